package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"collectioneer/internal/domain/auction"
	"collectioneer/internal/domain/bid"
	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/inbound"
	inmocks "collectioneer/internal/ports/inbound/mocks"
	"collectioneer/internal/ports/outbound"
	outmocks "collectioneer/internal/ports/outbound/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var (
	_ inbound.AuctionService     = (*AuctionService)(nil)
	_ inbound.CollectibleService = (*CollectibleService)(nil)
	_ inbound.ReviewService      = (*ReviewService)(nil)
	_ inbound.RoleService        = (*RoleService)(nil)
	_ inbound.CommunityService   = (*CommunityService)(nil)
	_ inbound.PostService        = (*PostService)(nil)
	_ inbound.CommentService     = (*CommentService)(nil)
	_ inbound.UserService        = (*UserService)(nil)
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// expectBegin makes the unit of work mock hand back the context it was given
func expectBegin(uow *outmocks.MockUnitOfWork) {
	uow.EXPECT().Begin(gomock.Any()).DoAndReturn(func(ctx context.Context) context.Context { return ctx }).AnyTimes()
}

type auctionMocks struct {
	uow          *outmocks.MockUnitOfWork
	auctions     *outmocks.MockAuctionRepository
	bids         *outmocks.MockBidRepository
	collectibles *inmocks.MockCollectibleService
	broadcaster  *outmocks.MockBroadcaster
	scheduler    *outmocks.MockCloseScheduler
}

func newAuctionServiceWithMocks(t *testing.T) (*AuctionService, auctionMocks) {
	ctrl := gomock.NewController(t)
	m := auctionMocks{
		uow:          outmocks.NewMockUnitOfWork(ctrl),
		auctions:     outmocks.NewMockAuctionRepository(ctrl),
		bids:         outmocks.NewMockBidRepository(ctrl),
		collectibles: inmocks.NewMockCollectibleService(ctrl),
		broadcaster:  outmocks.NewMockBroadcaster(ctrl),
		scheduler:    outmocks.NewMockCloseScheduler(ctrl),
	}
	expectBegin(m.uow)

	service := NewAuctionService(AuctionServiceParams{
		UnitOfWork:   m.uow,
		AuctionRepo:  m.auctions,
		BidRepo:      m.bids,
		Collectibles: m.collectibles,
		Broadcaster:  m.broadcaster,
		Scheduler:    m.scheduler,
		Now:          fixedClock,
		Logger:       zerolog.Nop(),
	})
	return service, m
}

func validCreateCommand() inbound.CreateAuctionCommand {
	return inbound.CreateAuctionCommand{
		CommunityID:   uuid.New(),
		AuctioneerID:  uuid.New(),
		CollectibleID: uuid.New(),
		StartingPrice: 100,
		Deadline:      testNow.Add(24 * time.Hour),
	}
}

// expectNotListed reports no unsettled auction for the collectible being listed
func expectNotListed(t *testing.T, m auctionMocks, collectibleID uuid.UUID) *gomock.Call {
	return m.auctions.EXPECT().
		List(gomock.Any(), gomock.Any(), 1, 1).
		DoAndReturn(func(_ context.Context, filter outbound.AuctionFilter, _, _ int) ([]*auction.Auction, error) {
			require.NotNil(t, filter.CollectibleID)
			require.Equal(t, collectibleID, *filter.CollectibleID)
			require.True(t, filter.Unsettled)
			return nil, nil
		})
}

func TestAuctionService_CreateAuction(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)
	cmd := validCreateCommand()

	var staged *auction.Auction
	gomock.InOrder(
		expectNotListed(t, m, cmd.CollectibleID),
		m.auctions.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *auction.Auction) (*auction.Auction, error) {
				staged = a
				return a, nil
			}),
		m.uow.EXPECT().Complete(gomock.Any()).Return(nil),
		m.collectibles.EXPECT().RegisterAuctionIDInCollectible(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, link inbound.RegisterAuctionIDCommand) error {
				require.Equal(t, cmd.CollectibleID, link.CollectibleID)
				require.Equal(t, staged.ID, link.AuctionID)
				return nil
			}),
		m.uow.EXPECT().Complete(gomock.Any()).Return(nil),
	)
	m.scheduler.EXPECT().ScheduleClose(gomock.Any(), gomock.Any(), cmd.Deadline).Return(nil)
	m.broadcaster.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, auctionID uuid.UUID, event outbound.Event) error {
			require.Equal(t, outbound.EventTypeAuctionCreated, event.Type)
			require.Equal(t, staged.ID, auctionID)
			return nil
		})

	got, err := service.CreateAuction(context.Background(), cmd)
	require.NoError(t, err)
	require.Same(t, staged, got)
	require.Equal(t, cmd.StartingPrice, got.CurrentPrice)
	require.Equal(t, auction.StateOpen, got.StateAt(testNow))
}

func TestAuctionService_CreateAuction_SideEffectFailuresAreIgnored(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)

	cmd := validCreateCommand()
	expectNotListed(t, m, cmd.CollectibleID)
	m.auctions.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *auction.Auction) (*auction.Auction, error) { return a, nil })
	m.uow.EXPECT().Complete(gomock.Any()).Return(nil).Times(2)
	m.collectibles.EXPECT().RegisterAuctionIDInCollectible(gomock.Any(), gomock.Any()).Return(nil)
	m.scheduler.EXPECT().ScheduleClose(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	m.broadcaster.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := service.CreateAuction(context.Background(), cmd)
	require.NoError(t, err)
}

func TestAuctionService_CreateAuction_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*inbound.CreateAuctionCommand)
		wantErr error
	}{
		{
			name:    "zero starting price",
			mutate:  func(cmd *inbound.CreateAuctionCommand) { cmd.StartingPrice = 0 },
			wantErr: shared.ErrInvalidStartingPrice,
		},
		{
			name:    "negative starting price",
			mutate:  func(cmd *inbound.CreateAuctionCommand) { cmd.StartingPrice = -5 },
			wantErr: shared.ErrInvalidStartingPrice,
		},
		{
			name:    "deadline now",
			mutate:  func(cmd *inbound.CreateAuctionCommand) { cmd.Deadline = testNow },
			wantErr: shared.ErrInvalidDeadline,
		},
		{
			name:    "deadline in the past",
			mutate:  func(cmd *inbound.CreateAuctionCommand) { cmd.Deadline = testNow.Add(-time.Minute) },
			wantErr: shared.ErrInvalidDeadline,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			// no repository or commit expectations: any call fails the test
			service, _ := newAuctionServiceWithMocks(t)

			cmd := validCreateCommand()
			tc.mutate(&cmd)

			_, err := service.CreateAuction(context.Background(), cmd)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAuctionService_CreateAuction_LinkFailureKeepsAuction(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)

	cmd := validCreateCommand()
	expectNotListed(t, m, cmd.CollectibleID)
	m.auctions.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *auction.Auction) (*auction.Auction, error) { return a, nil })
	m.uow.EXPECT().Complete(gomock.Any()).Return(nil).Times(1)
	m.collectibles.EXPECT().RegisterAuctionIDInCollectible(gomock.Any(), gomock.Any()).Return(shared.ErrCollectibleNotFound)

	got, err := service.CreateAuction(context.Background(), cmd)
	require.Nil(t, got)
	require.ErrorIs(t, err, shared.ErrCollectibleNotFound)
	require.ErrorIs(t, err, shared.ErrEntityNotFound)
}

func TestAuctionService_CreateAuction_CollectibleListedInUnsettledAuction(t *testing.T) {
	// no Add or Complete expectations: the auction must not be stored
	service, m := newAuctionServiceWithMocks(t)
	cmd := validCreateCommand()

	m.auctions.EXPECT().List(gomock.Any(), outbound.AuctionFilter{
		CollectibleID: &cmd.CollectibleID,
		Unsettled:     true,
	}, 1, 1).Return([]*auction.Auction{openAuction()}, nil)

	got, err := service.CreateAuction(context.Background(), cmd)
	require.Nil(t, got)
	require.ErrorIs(t, err, shared.ErrCollectibleAlreadyInAuction)
	require.Zero(t, service.locks.size())
}

func openAuction() *auction.Auction {
	return auction.New(uuid.New(), uuid.New(), uuid.New(), 100, testNow.Add(time.Hour), testNow.Add(-time.Hour))
}

func TestAuctionService_PlaceBid(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)
	a := openAuction()
	bidder := uuid.New()

	m.auctions.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	gomock.InOrder(
		m.bids.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *bid.Bid) (*bid.Bid, error) { return b, nil }),
		m.auctions.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, updated *auction.Auction, _ int64) error {
				require.Equal(t, 150.0, updated.CurrentPrice)
				require.Equal(t, int64(2), updated.Version)
				return nil
			}),
		m.uow.EXPECT().Complete(gomock.Any()).Return(nil).Times(1),
	)
	m.broadcaster.EXPECT().Publish(gomock.Any(), a.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, event outbound.Event) error {
			require.Equal(t, outbound.EventTypeBidPlaced, event.Type)
			require.Equal(t, 150.0, event.Data["amount"])
			return nil
		})

	got, err := service.PlaceBid(context.Background(), inbound.PlaceBidCommand{AuctionID: a.ID, BidderID: bidder, Amount: 150})
	require.NoError(t, err)
	require.Equal(t, a.ID, got.AuctionID)
	require.Equal(t, bidder, got.BidderID)
	require.Equal(t, 150.0, got.Amount)
	require.Zero(t, service.locks.size())
}

func TestAuctionService_PlaceBid_Rejected(t *testing.T) {
	withBid := openAuction()
	withBid.CurrentPrice = 200

	expired := openAuction()
	expired.Deadline = testNow

	settled := openAuction()
	closedAt := testNow.Add(-time.Minute)
	settled.ClosedAt = &closedAt

	tests := []struct {
		name    string
		auction *auction.Auction
		amount  float64
		wantErr error
	}{
		{name: "zero amount", auction: openAuction(), amount: 0, wantErr: shared.ErrBidAmountInvalid},
		{name: "negative amount", auction: openAuction(), amount: -10, wantErr: shared.ErrBidAmountInvalid},
		{name: "equal to starting price", auction: openAuction(), amount: 100, wantErr: shared.ErrBidBelowStartingPrice},
		{name: "below starting price", auction: openAuction(), amount: 99, wantErr: shared.ErrBidBelowStartingPrice},
		{name: "equal to current price", auction: withBid, amount: 200, wantErr: shared.ErrBidAmountTooLow},
		{name: "below current price", auction: withBid, amount: 150, wantErr: shared.ErrBidAmountTooLow},
		{name: "at deadline", auction: expired, amount: 500, wantErr: shared.ErrAuctionClosed},
		{name: "already settled", auction: settled, amount: 500, wantErr: shared.ErrAuctionClosed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			service, m := newAuctionServiceWithMocks(t)
			stored := *tc.auction
			m.auctions.EXPECT().GetByID(gomock.Any(), stored.ID).Return(&stored, nil)

			_, err := service.PlaceBid(context.Background(), inbound.PlaceBidCommand{
				AuctionID: stored.ID,
				BidderID:  uuid.New(),
				Amount:    tc.amount,
			})
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAuctionService_PlaceBid_AuctionNotFound(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)
	id := uuid.New()
	m.auctions.EXPECT().GetByID(gomock.Any(), id).Return(nil, shared.ErrAuctionNotFound)

	_, err := service.PlaceBid(context.Background(), inbound.PlaceBidCommand{AuctionID: id, BidderID: uuid.New(), Amount: 10})
	require.ErrorIs(t, err, shared.ErrAuctionNotFound)
	require.ErrorIs(t, err, shared.ErrEntityNotFound)
}

func TestAuctionService_PlaceBid_Conflict(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)
	a := openAuction()

	m.auctions.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	m.bids.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b *bid.Bid) (*bid.Bid, error) { return b, nil })
	m.auctions.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).Return(nil)
	m.uow.EXPECT().Complete(gomock.Any()).Return(shared.ErrBidConflict)

	_, err := service.PlaceBid(context.Background(), inbound.PlaceBidCommand{AuctionID: a.ID, BidderID: uuid.New(), Amount: 120})
	require.ErrorIs(t, err, shared.ErrBidConflict)
}

func TestAuctionService_GetAuction(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)
	a := openAuction()
	m.auctions.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	m.auctions.EXPECT().GetByID(gomock.Any(), gomock.Not(a.ID)).Return(nil, shared.ErrAuctionNotFound)

	got, err := service.GetAuction(context.Background(), a.ID)
	require.NoError(t, err)
	require.Same(t, a, got)

	_, err = service.GetAuction(context.Background(), uuid.New())
	require.ErrorIs(t, err, shared.ErrEntityNotFound)
}

func TestAuctionService_ListAuctions(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)
	community := uuid.New()

	m.auctions.EXPECT().List(gomock.Any(), outbound.AuctionFilter{}, 1, 10).Return(nil, nil)
	m.auctions.EXPECT().List(gomock.Any(), gomock.Any(), 3, 25).DoAndReturn(
		func(_ context.Context, filter outbound.AuctionFilter, _, _ int) ([]*auction.Auction, error) {
			require.Equal(t, &community, filter.CommunityID)
			require.NotNil(t, filter.OpenAt)
			require.True(t, filter.OpenAt.Equal(testNow))
			return nil, nil
		})

	_, err := service.ListAuctions(context.Background(), inbound.ListAuctionsQuery{})
	require.NoError(t, err)

	_, err = service.ListAuctions(context.Background(), inbound.ListAuctionsQuery{
		CommunityID: &community,
		OpenOnly:    true,
		Page:        3,
		PageSize:    25,
	})
	require.NoError(t, err)
}

func TestAuctionService_ListAuctions_CapsPageSize(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)

	m.auctions.EXPECT().List(gomock.Any(), outbound.AuctionFilter{}, 2, maxPageSize).Return(nil, nil)

	_, err := service.ListAuctions(context.Background(), inbound.ListAuctionsQuery{Page: 2, PageSize: 1_000_000})
	require.NoError(t, err)
}

func expiredAuction() *auction.Auction {
	return auction.New(uuid.New(), uuid.New(), uuid.New(), 100, testNow.Add(-time.Minute), testNow.Add(-time.Hour))
}

func TestAuctionService_CloseAuction_WithWinner(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)
	a := expiredAuction()
	highest := bid.New(a.ID, uuid.New(), 180, testNow.Add(-2*time.Minute))

	m.auctions.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	m.bids.EXPECT().GetHighest(gomock.Any(), a.ID).Return(highest, nil)
	m.auctions.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
		func(_ context.Context, closed *auction.Auction, _ int64) error {
			require.True(t, closed.IsSettled())
			require.Equal(t, highest.BidderID, *closed.WinnerID)
			return nil
		})
	m.uow.EXPECT().Complete(gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().Publish(gomock.Any(), a.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, event outbound.Event) error {
			require.Equal(t, outbound.EventTypeAuctionClosed, event.Type)
			return nil
		})

	result, err := service.CloseAuction(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, a.ID, result.AuctionID)
	require.Equal(t, highest.BidderID, *result.WinnerID)
	require.Equal(t, 180.0, *result.FinalPrice)
	require.True(t, result.ClosedAt.Equal(testNow))
}

func TestAuctionService_CloseAuction_NoBids(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)
	a := expiredAuction()

	m.auctions.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	m.bids.EXPECT().GetHighest(gomock.Any(), a.ID).Return(nil, shared.ErrNoBidsFound)
	m.auctions.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).Return(nil)
	m.uow.EXPECT().Complete(gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().Publish(gomock.Any(), a.ID, gomock.Any()).Return(nil)

	result, err := service.CloseAuction(context.Background(), a.ID)
	require.NoError(t, err)
	require.Nil(t, result.WinnerID)
	require.Nil(t, result.FinalPrice)
}

func TestAuctionService_CloseAuction_Rejected(t *testing.T) {
	settled := expiredAuction()
	closedAt := testNow.Add(-time.Second)
	settled.ClosedAt = &closedAt

	tests := []struct {
		name    string
		auction *auction.Auction
		wantErr error
	}{
		{name: "before deadline", auction: openAuction(), wantErr: shared.ErrAuctionStillOpen},
		{name: "already closed", auction: settled, wantErr: shared.ErrAuctionAlreadyClosed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			service, m := newAuctionServiceWithMocks(t)
			m.auctions.EXPECT().GetByID(gomock.Any(), tc.auction.ID).Return(tc.auction, nil)

			_, err := service.CloseAuction(context.Background(), tc.auction.ID)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAuctionService_GetBids(t *testing.T) {
	service, m := newAuctionServiceWithMocks(t)
	id := uuid.New()
	bids := []*bid.Bid{bid.New(id, uuid.New(), 110, testNow), bid.New(id, uuid.New(), 120, testNow)}
	m.bids.EXPECT().ListByAuction(gomock.Any(), id).Return(bids, nil)

	got, err := service.GetBids(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, bids, got)
}

package app

import (
	"context"
	"errors"
	"testing"

	"collectioneer/internal/domain/community"
	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/inbound"
	inmocks "collectioneer/internal/ports/inbound/mocks"
	outmocks "collectioneer/internal/ports/outbound/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRoleService_CreateNewRole_HidesStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := outmocks.NewMockUnitOfWork(ctrl)
	roles := outmocks.NewMockRoleRepository(ctrl)
	expectBegin(uow)

	cause := errors.New("connection reset")
	roles.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, cause)

	service := NewRoleService(RoleServiceParams{UnitOfWork: uow, RoleRepo: roles, Now: fixedClock, Logger: zerolog.Nop()})
	_, err := service.CreateNewRole(context.Background(), inbound.CreateRoleCommand{
		UserID:      uuid.New(),
		CommunityID: uuid.New(),
		RoleType:    community.RoleModerator,
	})

	require.EqualError(t, err, "Unknown error creating role.")
	require.ErrorIs(t, err, shared.ErrRoleCreation)
	require.ErrorIs(t, err, cause)
}

func TestRoleService_CreateNewRole_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewRoleService(RoleServiceParams{
		UnitOfWork: outmocks.NewMockUnitOfWork(ctrl),
		RoleRepo:   outmocks.NewMockRoleRepository(ctrl),
		Logger:     zerolog.Nop(),
	})

	_, err := service.CreateNewRole(context.Background(), inbound.CreateRoleCommand{RoleType: community.RoleType(9)})
	require.ErrorIs(t, err, shared.ErrInvalidRoleType)
}

func TestCommunityService_CreateNewCommunity_CommitsTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := outmocks.NewMockUnitOfWork(ctrl)
	communities := outmocks.NewMockCommunityRepository(ctrl)
	roles := inmocks.NewMockRoleService(ctrl)
	expectBegin(uow)

	founder := uuid.New()
	gomock.InOrder(
		communities.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *community.Community) (*community.Community, error) { return c, nil }),
		uow.EXPECT().Complete(gomock.Any()).Return(nil),
		roles.EXPECT().CreateNewRole(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd inbound.CreateRoleCommand) (*community.Role, error) {
				require.Equal(t, founder, cmd.UserID)
				require.Equal(t, community.RoleFounder, cmd.RoleType)
				return community.NewRole(cmd.UserID, cmd.CommunityID, cmd.RoleType, testNow), nil
			}),
		uow.EXPECT().Complete(gomock.Any()).Return(nil),
	)

	service := NewCommunityService(CommunityServiceParams{
		UnitOfWork:    uow,
		CommunityRepo: communities,
		Roles:         roles,
		Now:           fixedClock,
		Logger:        zerolog.Nop(),
	})

	c, err := service.CreateNewCommunity(context.Background(), inbound.CreateCommunityCommand{Name: "Stamps", UserID: founder})
	require.NoError(t, err)
	require.Equal(t, "Stamps", c.Name)
}

func TestCommunityService_AddUserToCommunity_CommitsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := outmocks.NewMockUnitOfWork(ctrl)
	communities := outmocks.NewMockCommunityRepository(ctrl)
	roles := inmocks.NewMockRoleService(ctrl)
	expectBegin(uow)

	existing := community.New("Coins", "", testNow)
	member := uuid.New()
	communities.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	roles.EXPECT().CreateNewRole(gomock.Any(), inbound.CreateRoleCommand{
		UserID:      member,
		CommunityID: existing.ID,
		RoleType:    community.RoleUser,
	}).Return(&community.Role{}, nil)
	uow.EXPECT().Complete(gomock.Any()).Return(nil).Times(1)

	service := NewCommunityService(CommunityServiceParams{
		UnitOfWork:    uow,
		CommunityRepo: communities,
		Roles:         roles,
		Logger:        zerolog.Nop(),
	})

	require.NoError(t, service.AddUserToCommunity(context.Background(), inbound.JoinCommunityCommand{UserID: member, CommunityID: existing.ID}))
}

package db

import (
	"context"
	"testing"
	"time"

	"collectioneer/internal/domain/collectible"
	"collectioneer/internal/domain/community"
	"collectioneer/internal/domain/post"
	"collectioneer/internal/domain/review"
	"collectioneer/internal/domain/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCollectibleRepository_LinkAuction(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewCollectibleRepository(conn)
	ctx := context.Background()

	c := collectible.New(uuid.New(), "Penny Black", "1840 stamp", uuid.New(), 2500, now)
	_, err := repo.Add(ctx, c)
	require.NoError(t, err)

	require.NoError(t, c.LinkAuction(uuid.New(), false, now.Add(time.Minute)))
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(c, got); diff != "" {
		t.Errorf("GetByID() mismatch (-want +got):\n%s", diff)
	}

	missing := collectible.New(uuid.New(), "ghost", "", uuid.New(), 1, now)
	require.ErrorIs(t, repo.Update(ctx, missing), shared.ErrCollectibleNotFound)
}

func TestReviewRepository_Lists(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewReviewRepository(conn)
	ctx := context.Background()

	collectibleID, reviewer := uuid.New(), uuid.New()
	first, err := review.New(reviewer, collectibleID, "great", 5, now)
	require.NoError(t, err)
	second, err := review.New(uuid.New(), collectibleID, "fine", 3, now.Add(time.Minute))
	require.NoError(t, err)

	for _, rv := range []*review.Review{first, second} {
		_, err := repo.Add(ctx, rv)
		require.NoError(t, err)
	}

	byCollectible, err := repo.ListByCollectible(ctx, collectibleID)
	require.NoError(t, err)
	if diff := cmp.Diff([]*review.Review{first, second}, byCollectible); diff != "" {
		t.Errorf("ListByCollectible() mismatch (-want +got):\n%s", diff)
	}

	byReviewer, err := repo.ListByReviewer(ctx, reviewer)
	require.NoError(t, err)
	require.Len(t, byReviewer, 1)
	require.Equal(t, first.ID, byReviewer[0].ID)
}

func TestCommunityAndRoleRepositories(t *testing.T) {
	conn := newTestConnection(t)
	communities := NewCommunityRepository(conn)
	roles := NewRoleRepository(conn)
	uow := NewUnitOfWork(conn)

	ctx := uow.Begin(context.Background())
	coins, err := communities.Add(ctx, community.New("coins", "numismatics", now))
	require.NoError(t, err)
	_, err = communities.Add(ctx, community.New("art", "", now))
	require.NoError(t, err)

	user := uuid.New()
	founder, err := roles.Add(ctx, community.NewRole(user, coins.ID, community.RoleFounder, now))
	require.NoError(t, err)
	require.NoError(t, uow.Complete(ctx))

	list, err := communities.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "art", list[0].Name)

	got, err := communities.GetByID(context.Background(), coins.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(coins, got); diff != "" {
		t.Errorf("GetByID() mismatch (-want +got):\n%s", diff)
	}

	_, err = communities.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, shared.ErrCommunityNotFound)

	userRoles, err := roles.ListByUser(context.Background(), user)
	require.NoError(t, err)
	if diff := cmp.Diff([]*community.Role{founder}, userRoles); diff != "" {
		t.Errorf("ListByUser() mismatch (-want +got):\n%s", diff)
	}
}

func TestPostAndCommentRepositories(t *testing.T) {
	conn := newTestConnection(t)
	posts := NewPostRepository(conn)
	comments := NewCommentRepository(conn)
	ctx := context.Background()
	communityID := uuid.New()

	coins, err := posts.Add(ctx, post.New(communityID, "Rare Coins", "a denarius", uuid.New(), now))
	require.NoError(t, err)
	_, err = posts.Add(ctx, post.New(communityID, "Stamps", "nothing round here", uuid.New(), now))
	require.NoError(t, err)
	_, err = posts.Add(ctx, post.New(uuid.New(), "coins elsewhere", "", uuid.New(), now))
	require.NoError(t, err)

	found, err := posts.Search(ctx, "COIN", communityID)
	require.NoError(t, err)
	if diff := cmp.Diff([]*post.Post{coins}, found); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}

	_, err = posts.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, shared.ErrPostNotFound)

	comment, err := comments.Add(ctx, post.NewComment(post.TargetPost, coins.ID, uuid.New(), "nice", now))
	require.NoError(t, err)
	_, err = comments.Add(ctx, post.NewComment(post.TargetCollectible, coins.ID, uuid.New(), "other target", now))
	require.NoError(t, err)

	onPost, err := comments.ListByTarget(ctx, post.TargetPost, coins.ID)
	require.NoError(t, err)
	if diff := cmp.Diff([]*post.Comment{comment}, onPost); diff != "" {
		t.Errorf("ListByTarget() mismatch (-want +got):\n%s", diff)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewUserRepository(conn)
	uow := NewUnitOfWork(conn)

	ada := shared.NewUser("ada", "ada@example.com", "Ada", "hash", now)
	_, err := repo.Add(context.Background(), ada)
	require.NoError(t, err)

	got, err := repo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	if diff := cmp.Diff(ada, got); diff != "" {
		t.Errorf("GetByEmail() mismatch (-want +got):\n%s", diff)
	}

	ctx := uow.Begin(context.Background())
	_, err = repo.Add(ctx, shared.NewUser("other", "ada@example.com", "Other", "hash", now))
	require.NoError(t, err)
	require.ErrorIs(t, uow.Complete(ctx), shared.ErrDuplicatedCredentials)

	_, err = repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, shared.ErrUserNotFound)
}

func TestMediaElementRepository_MostRecentFirst(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewMediaElementRepository(conn)
	ctx := context.Background()
	uploader := uuid.New()

	old, err := repo.Add(ctx, shared.NewMediaElement(uploader, "old", "https://cdn/old.png", now))
	require.NoError(t, err)
	recent, err := repo.Add(ctx, shared.NewMediaElement(uploader, "new", "https://cdn/new.png", now.Add(time.Minute)))
	require.NoError(t, err)

	media, err := repo.ListByUploader(ctx, uploader)
	require.NoError(t, err)
	if diff := cmp.Diff([]*shared.MediaElement{recent, old}, media); diff != "" {
		t.Errorf("ListByUploader() mismatch (-want +got):\n%s", diff)
	}
}

package app

import (
	"context"
	"strings"
	"time"

	"collectioneer/internal/domain/post"
	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/inbound"
	"collectioneer/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PostService implements the community post use cases
type PostService struct {
	uow      outbound.UnitOfWork
	postRepo outbound.PostRepository
	now      func() time.Time
	logger   zerolog.Logger
}

type PostServiceParams struct {
	UnitOfWork outbound.UnitOfWork
	PostRepo   outbound.PostRepository
	Now        func() time.Time
	Logger     zerolog.Logger
}

func NewPostService(params PostServiceParams) *PostService {
	return &PostService{
		uow:      params.UnitOfWork,
		postRepo: params.PostRepo,
		now:      clockOrDefault(params.Now),
		logger:   params.Logger.With().Str("component", "post_service").Logger(),
	}
}

func (service *PostService) AddPost(ctx context.Context, cmd inbound.AddPostCommand) (*post.Post, error) {
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return nil, shared.ErrInvalidPost
	}

	ctx = service.uow.Begin(ctx)

	p := post.New(cmd.CommunityID, title, cmd.Content, cmd.AuthorID, service.now())
	if _, err := service.postRepo.Add(ctx, p); err != nil {
		return nil, err
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("post_id", p.ID.String()).Msg("Failed to save post")
		return nil, err
	}

	service.logger.Info().
		Str("post_id", p.ID.String()).
		Str("community_id", p.CommunityID.String()).
		Msg("Post added")
	return p, nil
}

// Search finds the posts of a community whose title or content contains the term
func (service *PostService) Search(ctx context.Context, query inbound.PostSearchQuery) ([]*post.Post, error) {
	return service.postRepo.Search(ctx, strings.TrimSpace(query.SearchTerm), query.CommunityID)
}

func (service *PostService) GetPost(ctx context.Context, postID uuid.UUID) (*post.Post, error) {
	return service.postRepo.GetByID(ctx, postID)
}

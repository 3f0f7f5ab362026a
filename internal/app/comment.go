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

// CommentService implements the comment use cases
type CommentService struct {
	uow         outbound.UnitOfWork
	commentRepo outbound.CommentRepository
	userRepo    outbound.UserRepository
	mediaRepo   outbound.MediaElementRepository
	now         func() time.Time
	logger      zerolog.Logger
}

type CommentServiceParams struct {
	UnitOfWork  outbound.UnitOfWork
	CommentRepo outbound.CommentRepository
	UserRepo    outbound.UserRepository
	MediaRepo   outbound.MediaElementRepository
	Now         func() time.Time
	Logger      zerolog.Logger
}

func NewCommentService(params CommentServiceParams) *CommentService {
	return &CommentService{
		uow:         params.UnitOfWork,
		commentRepo: params.CommentRepo,
		userRepo:    params.UserRepo,
		mediaRepo:   params.MediaRepo,
		now:         clockOrDefault(params.Now),
		logger:      params.Logger.With().Str("component", "comment_service").Logger(),
	}
}

// PostComment attaches a comment to exactly one post or collectible
func (service *CommentService) PostComment(ctx context.Context, cmd inbound.PostCommentCommand) (*post.Comment, error) {
	var (
		targetType post.TargetType
		targetID   uuid.UUID
	)
	switch {
	case cmd.PostID != nil && cmd.CollectibleID == nil:
		targetType, targetID = post.TargetPost, *cmd.PostID
	case cmd.CollectibleID != nil && cmd.PostID == nil:
		targetType, targetID = post.TargetCollectible, *cmd.CollectibleID
	default:
		return nil, shared.ErrInvalidCommentTarget
	}

	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		return nil, shared.ErrEmptyComment
	}

	ctx = service.uow.Begin(ctx)

	comment := post.NewComment(targetType, targetID, cmd.AuthorID, content, service.now())
	if _, err := service.commentRepo.Add(ctx, comment); err != nil {
		return nil, err
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("comment_id", comment.ID.String()).Msg("Failed to save comment")
		return nil, err
	}

	service.logger.Debug().
		Str("comment_id", comment.ID.String()).
		Str("target_type", string(targetType)).
		Str("target_id", targetID.String()).
		Msg("Comment posted")
	return comment, nil
}

func (service *CommentService) GetCommentsForCollectible(ctx context.Context, collectibleID uuid.UUID) ([]*post.CommentDTO, error) {
	return service.commentsFor(ctx, post.TargetCollectible, collectibleID)
}

func (service *CommentService) GetCommentsForPost(ctx context.Context, postID uuid.UUID) ([]*post.CommentDTO, error) {
	return service.commentsFor(ctx, post.TargetPost, postID)
}

func (service *CommentService) commentsFor(ctx context.Context, targetType post.TargetType, targetID uuid.UUID) ([]*post.CommentDTO, error) {
	comments, err := service.commentRepo.ListByTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*post.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		dto, err := service.MapCommentToDTO(ctx, comment)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

// MapCommentToDTO decorates a comment with its author's username and latest
// profile picture. ProfileURI stays empty for authors without media.
func (service *CommentService) MapCommentToDTO(ctx context.Context, comment *post.Comment) (*post.CommentDTO, error) {
	author, err := service.userRepo.GetByID(ctx, comment.AuthorID)
	if err != nil {
		service.logger.Error().Err(err).Str("author_id", comment.AuthorID.String()).Msg("Failed to retrieve comment author")
		return nil, err
	}

	media, err := service.mediaRepo.ListByUploader(ctx, comment.AuthorID)
	if err != nil {
		return nil, err
	}

	dto := &post.CommentDTO{
		Comment:  *comment,
		Username: author.Username,
	}
	if len(media) > 0 {
		dto.ProfileURI = media[0].MediaURL
	}
	return dto, nil
}

package post

import (
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// TargetType is the kind of entity a comment is attached to
type TargetType string

const (
	TargetPost        TargetType = "post"
	TargetCollectible TargetType = "collectible"
)

// Comment is a short message attached to a post or a collectible
type Comment struct {
	ID         uuid.UUID  `json:"id"`
	TargetType TargetType `json:"target_type"`
	TargetID   uuid.UUID  `json:"target_id"`
	AuthorID   uuid.UUID  `json:"author_id"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewComment creates a comment
func NewComment(targetType TargetType, targetID, authorID uuid.UUID, content string, now time.Time) *Comment {
	return &Comment{
		ID:         uuid.New(),
		TargetType: targetType,
		TargetID:   targetID,
		AuthorID:   authorID,
		Content:    content,
		CreatedAt:  shared.Timestamp(now),
	}
}

// CommentDTO is a comment enriched with its author's public profile
type CommentDTO struct {
	Comment
	Username   string `json:"username"`
	ProfileURI string `json:"profile_uri"`
}

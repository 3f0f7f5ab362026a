package post

import (
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// Post is a community publication
type Post struct {
	ID          uuid.UUID `json:"id"`
	CommunityID uuid.UUID `json:"community_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    uuid.UUID `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// New creates a post
func New(communityID uuid.UUID, title, content string, authorID uuid.UUID, now time.Time) *Post {
	return &Post{
		ID:          uuid.New(),
		CommunityID: communityID,
		Title:       title,
		Content:     content,
		AuthorID:    authorID,
		CreatedAt:   shared.Timestamp(now),
	}
}

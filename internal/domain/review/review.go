package review

import (
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rated opinion of a collectible
type Review struct {
	ID            uuid.UUID `json:"id"`
	ReviewerID    uuid.UUID `json:"reviewer_id"`
	CollectibleID uuid.UUID `json:"collectible_id"`
	Content       string    `json:"content"`
	Rating        int       `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// New creates a review, rejecting ratings outside MinRating..MaxRating
func New(reviewerID, collectibleID uuid.UUID, content string, rating int, now time.Time) (*Review, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, shared.ErrInvalidRating
	}
	return &Review{
		ID:            uuid.New(),
		ReviewerID:    reviewerID,
		CollectibleID: collectibleID,
		Content:       content,
		Rating:        rating,
		CreatedAt:     shared.Timestamp(now),
	}, nil
}

// Stats returns the average rating and the number of reviews
func Stats(reviews []*Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews)), len(reviews)
}

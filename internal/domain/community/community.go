package community

import (
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// Community groups collectors around a shared interest
type Community struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// New creates a community
func New(name, description string, now time.Time) *Community {
	return &Community{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   shared.Timestamp(now),
	}
}

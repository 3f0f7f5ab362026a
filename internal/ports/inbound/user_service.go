package inbound

import (
	"context"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// UserService defines the interface for user operations
type UserService interface {
	// RegisterNewUser fails with ErrDuplicatedCredentials for a known email
	RegisterNewUser(ctx context.Context, cmd RegisterUserCommand) (*shared.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*shared.User, error)
	SetProfilePicture(ctx context.Context, cmd SetProfilePictureCommand) (*shared.MediaElement, error)
}

type RegisterUserCommand struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SetProfilePictureCommand struct {
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	MediaURL string    `json:"media_url"`
}

package shared

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered collector
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser builds a user from an already hashed password
func NewUser(username, email, name, passwordHash string, now time.Time) *User {
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    Timestamp(now),
	}
}

// MediaElement is an uploaded media reference, such as a profile picture
type MediaElement struct {
	ID         uuid.UUID `json:"id"`
	UploaderID uuid.UUID `json:"uploader_id"`
	Name       string    `json:"name"`
	MediaURL   string    `json:"media_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewMediaElement creates a media element owned by uploaderID
func NewMediaElement(uploaderID uuid.UUID, name, mediaURL string, now time.Time) *MediaElement {
	return &MediaElement{
		ID:         uuid.New(),
		UploaderID: uploaderID,
		Name:       name,
		MediaURL:   mediaURL,
		CreatedAt:  Timestamp(now),
	}
}

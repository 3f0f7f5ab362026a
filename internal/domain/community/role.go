package community

import (
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// RoleType is the membership level of a user within a community
type RoleType int

const (
	RoleFounder   RoleType = 1
	RoleModerator RoleType = 2
	RoleUser      RoleType = 3
)

func (t RoleType) String() string {
	switch t {
	case RoleFounder:
		return "founder"
	case RoleModerator:
		return "moderator"
	case RoleUser:
		return "user"
	default:
		return "unknown"
	}
}

// IsValid returns true for the known role types
func (t RoleType) IsValid() bool {
	return t >= RoleFounder && t <= RoleUser
}

// Role binds a user to a community
type Role struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CommunityID uuid.UUID `json:"community_id"`
	Type        RoleType  `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRole creates a role
func NewRole(userID, communityID uuid.UUID, roleType RoleType, now time.Time) *Role {
	return &Role{
		ID:          uuid.New(),
		UserID:      userID,
		CommunityID: communityID,
		Type:        roleType,
		CreatedAt:   shared.Timestamp(now),
	}
}

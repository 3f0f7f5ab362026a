package db

import (
	"collectioneer/internal/ports/outbound"
)

// RepositoryFactory creates and manages all database repositories
type RepositoryFactory struct {
	conn *Connection
}

// NewRepositoryFactory creates a new repository factory
func NewRepositoryFactory(conn *Connection) *RepositoryFactory {
	return &RepositoryFactory{conn: conn}
}

// GetAllRepositories returns all repositories in a struct for easy dependency injection
func (f *RepositoryFactory) GetAllRepositories() outbound.Repositories {
	return outbound.Repositories{
		UnitOfWork:             NewUnitOfWork(f.conn),
		AuctionRepository:      NewAuctionRepository(f.conn),
		BidRepository:          NewBidRepository(f.conn),
		CollectibleRepository:  NewCollectibleRepository(f.conn),
		ReviewRepository:       NewReviewRepository(f.conn),
		CommunityRepository:    NewCommunityRepository(f.conn),
		RoleRepository:         NewRoleRepository(f.conn),
		PostRepository:         NewPostRepository(f.conn),
		CommentRepository:      NewCommentRepository(f.conn),
		UserRepository:         NewUserRepository(f.conn),
		MediaElementRepository: NewMediaElementRepository(f.conn),
	}
}

package app

import (
	"context"
	"strings"
	"time"

	"collectioneer/internal/domain/community"
	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/inbound"
	"collectioneer/internal/ports/outbound"

	"github.com/rs/zerolog"
)

// CommunityService implements the community use cases
type CommunityService struct {
	uow           outbound.UnitOfWork
	communityRepo outbound.CommunityRepository
	roles         inbound.RoleService
	now           func() time.Time
	logger        zerolog.Logger
}

type CommunityServiceParams struct {
	UnitOfWork    outbound.UnitOfWork
	CommunityRepo outbound.CommunityRepository
	Roles         inbound.RoleService
	Now           func() time.Time
	Logger        zerolog.Logger
}

func NewCommunityService(params CommunityServiceParams) *CommunityService {
	return &CommunityService{
		uow:           params.UnitOfWork,
		communityRepo: params.CommunityRepo,
		roles:         params.Roles,
		now:           clockOrDefault(params.Now),
		logger:        params.Logger.With().Str("component", "community_service").Logger(),
	}
}

// CreateNewCommunity creates a community and makes its creator the founder.
// The community is committed before the founder role is granted.
func (service *CommunityService) CreateNewCommunity(ctx context.Context, cmd inbound.CreateCommunityCommand) (*community.Community, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, shared.ErrInvalidCommunity
	}

	ctx = service.uow.Begin(ctx)

	c := community.New(name, cmd.Description, service.now())
	if _, err := service.communityRepo.Add(ctx, c); err != nil {
		return nil, err
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("community_id", c.ID.String()).Msg("Failed to save community")
		return nil, err
	}

	_, err := service.roles.CreateNewRole(ctx, inbound.CreateRoleCommand{
		UserID:      cmd.UserID,
		CommunityID: c.ID,
		RoleType:    community.RoleFounder,
	})
	if err != nil {
		service.logger.Error().Err(err).Str("community_id", c.ID.String()).Msg("Failed to grant founder role")
		return nil, err
	}
	if err := service.uow.Complete(ctx); err != nil {
		return nil, err
	}

	service.logger.Info().
		Str("community_id", c.ID.String()).
		Str("founder_id", cmd.UserID.String()).
		Msg("Community created")
	return c, nil
}

// AddUserToCommunity grants a user the member role in an existing community
func (service *CommunityService) AddUserToCommunity(ctx context.Context, cmd inbound.JoinCommunityCommand) error {
	ctx = service.uow.Begin(ctx)

	if _, err := service.communityRepo.GetByID(ctx, cmd.CommunityID); err != nil {
		return err
	}

	_, err := service.roles.CreateNewRole(ctx, inbound.CreateRoleCommand{
		UserID:      cmd.UserID,
		CommunityID: cmd.CommunityID,
		RoleType:    community.RoleUser,
	})
	if err != nil {
		return err
	}
	if err := service.uow.Complete(ctx); err != nil {
		return err
	}

	service.logger.Info().
		Str("community_id", cmd.CommunityID.String()).
		Str("user_id", cmd.UserID.String()).
		Msg("User joined community")
	return nil
}

func (service *CommunityService) GetCommunities(ctx context.Context) ([]*community.Community, error) {
	return service.communityRepo.List(ctx)
}

func (service *CommunityService) GetCommunity(ctx context.Context, query inbound.GetCommunityQuery) (*community.Community, error) {
	return service.communityRepo.GetByID(ctx, query.CommunityID)
}

package app

import (
	"context"
	"time"

	"collectioneer/internal/domain/community"
	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/inbound"
	"collectioneer/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RoleService implements the community membership use cases
type RoleService struct {
	uow      outbound.UnitOfWork
	roleRepo outbound.RoleRepository
	now      func() time.Time
	logger   zerolog.Logger
}

type RoleServiceParams struct {
	UnitOfWork outbound.UnitOfWork
	RoleRepo   outbound.RoleRepository
	Now        func() time.Time
	Logger     zerolog.Logger
}

func NewRoleService(params RoleServiceParams) *RoleService {
	return &RoleService{
		uow:      params.UnitOfWork,
		roleRepo: params.RoleRepo,
		now:      clockOrDefault(params.Now),
		logger:   params.Logger.With().Str("component", "role_service").Logger(),
	}
}

// CreateNewRole grants a role. Storage failures are reported as a
// RoleCreationError whose message does not leak the cause.
func (service *RoleService) CreateNewRole(ctx context.Context, cmd inbound.CreateRoleCommand) (*community.Role, error) {
	if !cmd.RoleType.IsValid() {
		return nil, shared.ErrInvalidRoleType
	}

	ctx = service.uow.Begin(ctx)

	role := community.NewRole(cmd.UserID, cmd.CommunityID, cmd.RoleType, service.now())
	if _, err := service.roleRepo.Add(ctx, role); err != nil {
		service.logger.Error().Err(err).Str("user_id", cmd.UserID.String()).Msg("Failed to stage role")
		return nil, &shared.RoleCreationError{Err: err}
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("user_id", cmd.UserID.String()).Msg("Failed to save role")
		return nil, &shared.RoleCreationError{Err: err}
	}

	service.logger.Info().
		Str("user_id", role.UserID.String()).
		Str("community_id", role.CommunityID.String()).
		Stringer("role", role.Type).
		Msg("Role created")
	return role, nil
}

func (service *RoleService) GetUserRoles(ctx context.Context, userID uuid.UUID) ([]*community.Role, error) {
	return service.roleRepo.ListByUser(ctx, userID)
}

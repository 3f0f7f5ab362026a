package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/inbound"
	"collectioneer/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// UserService implements the user account use cases
type UserService struct {
	uow          outbound.UnitOfWork
	userRepo     outbound.UserRepository
	mediaRepo    outbound.MediaElementRepository
	passwordCost int
	now          func() time.Time
	logger       zerolog.Logger
}

type UserServiceParams struct {
	UnitOfWork outbound.UnitOfWork
	UserRepo   outbound.UserRepository
	MediaRepo  outbound.MediaElementRepository
	// PasswordCost is the bcrypt cost, bcrypt.DefaultCost when zero
	PasswordCost int
	Now          func() time.Time
	Logger       zerolog.Logger
}

func NewUserService(params UserServiceParams) *UserService {
	cost := params.PasswordCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserService{
		uow:          params.UnitOfWork,
		userRepo:     params.UserRepo,
		mediaRepo:    params.MediaRepo,
		passwordCost: cost,
		now:          clockOrDefault(params.Now),
		logger:       params.Logger.With().Str("component", "user_service").Logger(),
	}
}

// RegisterNewUser creates an account. Emails are compared case-insensitively.
func (service *UserService) RegisterNewUser(ctx context.Context, cmd inbound.RegisterUserCommand) (*shared.User, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, shared.ErrInvalidCredentials
	}

	existing, err := service.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		service.logger.Warn().Str("email", email).Msg("Email already registered")
		return nil, shared.ErrDuplicatedCredentials
	case err != nil && !errors.Is(err, shared.ErrUserNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), service.passwordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	ctx = service.uow.Begin(ctx)

	user := shared.NewUser(cmd.Username, email, cmd.Name, string(hash), service.now())
	if _, err := service.userRepo.Add(ctx, user); err != nil {
		return nil, err
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("Failed to save user")
		return nil, err
	}

	service.logger.Info().
		Str("user_id", user.ID.String()).
		Str("username", user.Username).
		Msg("User registered")
	return user, nil
}

func (service *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*shared.User, error) {
	return service.userRepo.GetByID(ctx, userID)
}

// SetProfilePicture records a new profile picture. The most recent media
// element of a user is their current picture.
func (service *UserService) SetProfilePicture(ctx context.Context, cmd inbound.SetProfilePictureCommand) (*shared.MediaElement, error) {
	if _, err := service.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	ctx = service.uow.Begin(ctx)

	media := shared.NewMediaElement(cmd.UserID, cmd.Name, cmd.MediaURL, service.now())
	if _, err := service.mediaRepo.Add(ctx, media); err != nil {
		return nil, err
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("user_id", cmd.UserID.String()).Msg("Failed to save profile picture")
		return nil, err
	}

	return media, nil
}

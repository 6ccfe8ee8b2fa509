package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// userService manages the authenticated user's own profile. The user ID
// always comes from the verified token, never from the request body, so every
// method operates strictly on the caller's account.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) GetProfile(ctx context.Context, userID uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of patch to the caller's account.
// Omitted fields keep their stored values.
func (u *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	updated, err := u.userRepository.UpdateUser(ctx, userID, patch)
	if err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

// DeleteProfile removes the caller's account. Cars and applications cascade
// at the schema level.
func (u *userService) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("profile deletion failed")
		return fmt.Errorf("profile deletion failed: %w", err)
	}

	return nil
}

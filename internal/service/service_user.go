package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/store"
	"github.com/MKhiriev/go-house-bids/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the public profile of userID. The password hash is
// cleared. Returns store.ErrNoUserWasFound for an unknown id.
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	user.Password = ""
	return user, nil
}

func (u *userService) UpdateUsername(ctx context.Context, userID int64, username string) error {
	if username == "" {
		return nil
	}

	if err := u.userRepository.UpdateUsername(ctx, userID, username); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("id", userID).
			Str("username", username).
			Msg("username update failed")
		return fmt.Errorf("username update failed: %w", err)
	}

	return nil
}

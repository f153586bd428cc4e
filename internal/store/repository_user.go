package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the database/sql implementation of [UserRepository]
// over the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser implements [UserRepository]. user.Password must already be
// hashed.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = time.Now().UTC()
	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error inserting user")

		switch r.db.classify(err) {
		case UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return user, nil
}

// FindUserByUsername implements [UserRepository].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", sq.Eq{"username": username})
}

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": userID})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&foundUser.UserID, &foundUser.Username, &foundUser.Password, &foundUser.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// UpdateUsername implements [UserRepository].
func (r *userRepository) UpdateUsername(ctx context.Context, userID int64, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUsernameQuery(r.db.builder, userID, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUsername").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUsername").Int64("user_id", userID).Msg("error updating username")

		switch r.db.classify(err) {
		case UniqueViolation:
			return ErrUsernameAlreadyExists
		default:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-house-bids/internal/config"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/store"
	"github.com/MKhiriev/go-house-bids/internal/utils"
	"github.com/MKhiriev/go-house-bids/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the bearer
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt cost applied at registration.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// The plain-text password is replaced by its bcrypt hash before the user is
// handed to the repository, and the returned user carries no password.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(user.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, err
	}
	user.Password = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.Password = ""
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials,
// so callers cannot tell which usernames exist. Any other failure (storage
// error, corrupt stored hash) is returned wrapped and is never reported as
// bad credentials.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", user.Username).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := utils.CheckPassword(foundUser.Password, user.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.User{}, err
	}
	if !ok {
		log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser.Password = ""
	return foundUser, nil
}

// CreateToken issues a signed token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string.
//
// Returns ErrTokenIsExpired when the token is past its expiry and
// ErrTokenIsInvalid for every other verification failure (bad signature,
// wrong algorithm or issuer, malformed, no user id). Both match
// ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err == nil {
		return token, nil
	}

	logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	return models.Token{}, ErrTokenIsInvalid
}

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	// ErrInvalidToken is the parent of every token verification failure.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenIsExpired = fmt.Errorf("%w: token is expired", ErrInvalidToken)
	ErrTokenIsInvalid = fmt.Errorf("%w: token is malformed or not trusted", ErrInvalidToken)

	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrFrontendConfigNotFound = errors.New("frontend config not found")
	ErrInvalidFrontendConfig  = errors.New("frontend config is not valid JSON")
)

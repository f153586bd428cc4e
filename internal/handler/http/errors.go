// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

// ErrNoTokenProvided is the parent of every failure to find a bearer token in
// the request. Callers can match against it with [errors.Is].
var ErrNoTokenProvided = errors.New("no token provided")

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. All of them wrap [ErrNoTokenProvided].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = fmt.Errorf("%w: empty `Authorization` header", ErrNoTokenProvided)

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not start with the Bearer scheme followed by a space.
	ErrInvalidAuthorizationHeader = fmt.Errorf("%w: invalid `Authorization` header", ErrNoTokenProvided)

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = fmt.Errorf("%w: empty token in `Authorization` header", ErrNoTokenProvided)
)

// Request decoding errors.
var (
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrInvalidForm      = errors.New("invalid multipart form")
	ErrRequestTooLarge  = errors.New("request body is too large")
	ErrInvalidPathParam = errors.New("invalid path parameter")
	ErrNoUserInContext  = errors.New("no authenticated user in request context")
)

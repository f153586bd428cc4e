// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the go-house-bids HTTP API.
//
// [ServerAdapter] hides the REST routes behind plain method calls. Failed
// responses are mapped by mapHTTPError onto the sentinel errors in errors.go,
// so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401,
// [ErrConflict] for 409) and still read the server's message text.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-house-bids/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a go-house-bids server on behalf of a single user.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when there is none.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login exchanges credentials for a bearer token, stores it via SetToken
	// and returns it.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	ListHouses(ctx context.Context) ([]models.HouseResponse, error)
	GetHouse(ctx context.Context, houseID int64) (models.HouseResponse, error)
	ListUserHouses(ctx context.Context, userID int64) ([]models.HouseResponse, error)

	// AddHouse lists a house for the logged-in user, uploading photo under
	// photoName as a multipart form.
	AddHouse(ctx context.Context, address string, price float64, photoName string, photo io.Reader) error

	// PlaceBid bids amount on a house as the logged-in user.
	PlaceBid(ctx context.Context, houseID int64, amount float64) error

	// ListBids returns the bids on a house, highest first.
	ListBids(ctx context.Context, houseID int64) ([]models.BidResponse, error)

	// GetUser returns the public profile of any user.
	GetUser(ctx context.Context, userID int64) (models.UserResponse, error)

	CurrentUser(ctx context.Context) (models.UserResponse, error)
	UpdateUsername(ctx context.Context, username string) error
}

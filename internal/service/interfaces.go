package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MKhiriev/go-house-bids/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	// UpdateUsername renames the user; an empty username is a no-op.
	UpdateUsername(ctx context.Context, userID int64, username string) error
}

type HouseService interface {
	CreateHouse(ctx context.Context, house models.NewHouse) (models.House, error)
	GetHouse(ctx context.Context, houseID int64) (models.House, error)
	ListHouses(ctx context.Context) ([]models.House, error)
	ListHousesByUser(ctx context.Context, userID int64) ([]models.House, error)
	// OpenPhoto streams a stored listing photo. The caller closes it.
	OpenPhoto(ctx context.Context, name string) (io.ReadCloser, error)
}

type BidService interface {
	PlaceBid(ctx context.Context, bid models.Bid) (models.Bid, error)
	ListBids(ctx context.Context, houseID int64) ([]models.Bid, error)
}

// AppConfigService exposes the front-end configuration document.
type AppConfigService interface {
	FrontendConfig(ctx context.Context) (json.RawMessage, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// HouseServiceWrapper defines middleware composition for HouseService.
type HouseServiceWrapper interface {
	Wrap(HouseService) HouseService
}

// BidServiceWrapper defines middleware composition for BidService.
type BidServiceWrapper interface {
	Wrap(BidService) BidService
}

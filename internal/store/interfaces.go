package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-house-bids/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns ErrUsernameAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns ErrNoUserWasFound when nobody has that name.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID returns ErrNoUserWasFound when the id is unknown.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateUsername renames a user. Returns ErrUsernameAlreadyExists or
	// ErrNoUserWasFound.
	UpdateUsername(ctx context.Context, userID int64, username string) error
}

// HouseRepository persists house listings. Reads resolve the owner's
// username into House.OwnerName, leaving it empty when the owner is gone.
type HouseRepository interface {
	// CreateHouse inserts house and returns it with HouseID and CreatedAt set.
	// Returns ErrNoUserWasFound when the owner does not exist.
	CreateHouse(ctx context.Context, house models.House) (models.House, error)
	// GetHouse returns ErrHouseNotFound when the id is unknown.
	GetHouse(ctx context.Context, houseID int64) (models.House, error)
	// ListHouses returns every house ordered by id.
	ListHouses(ctx context.Context) ([]models.House, error)
	// ListHousesByUser returns the houses owned by userID ordered by id.
	ListHousesByUser(ctx context.Context, userID int64) ([]models.House, error)
}

// BidRepository persists bids.
type BidRepository interface {
	// CreateBid inserts bid and returns it with BidID and Timestamp set.
	// Returns ErrHouseNotFound when the house does not exist.
	CreateBid(ctx context.Context, bid models.Bid) (models.Bid, error)
	// ListBidsByHouse returns the bids on houseID, highest amount first and
	// oldest first among equal amounts.
	ListBidsByHouse(ctx context.Context, houseID int64) ([]models.Bid, error)
}

// PhotoStorage stores uploaded house photos by their sanitized filename.
// Saving a name that already exists replaces the stored photo.
type PhotoStorage interface {
	Save(ctx context.Context, name string, photo io.Reader) error
	// Open returns ErrPhotoNotFound when nothing is stored under name.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

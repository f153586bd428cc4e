package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-house-bids/internal/validators"
	"github.com/MKhiriev/go-house-bids/models"
)

// AuthValidationService checks credentials before they reach the wrapped
// AuthService. Token operations pass straight through.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewHouseBidsValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, validators.FieldUsername, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.RegisterUser(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, validators.FieldUsername, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Login(ctx, user)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// HouseValidationService checks new listings before they reach the wrapped
// HouseService.
type HouseValidationService struct {
	inner     HouseService
	validator validators.Validator
}

func NewHouseValidationService() HouseServiceWrapper {
	return &HouseValidationService{
		validator: validators.NewHouseBidsValidator(),
	}
}

func (v *HouseValidationService) CreateHouse(ctx context.Context, house models.NewHouse) (models.House, error) {
	if err := v.validator.Validate(ctx, house); err != nil {
		return models.House{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateHouse(ctx, house)
}

func (v *HouseValidationService) GetHouse(ctx context.Context, houseID int64) (models.House, error) {
	return v.inner.GetHouse(ctx, houseID)
}

func (v *HouseValidationService) ListHouses(ctx context.Context) ([]models.House, error) {
	return v.inner.ListHouses(ctx)
}

func (v *HouseValidationService) ListHousesByUser(ctx context.Context, userID int64) ([]models.House, error) {
	return v.inner.ListHousesByUser(ctx, userID)
}

func (v *HouseValidationService) OpenPhoto(ctx context.Context, name string) (io.ReadCloser, error) {
	return v.inner.OpenPhoto(ctx, name)
}

func (v *HouseValidationService) Wrap(inner HouseService) HouseService {
	v.inner = inner
	return v
}

// BidValidationService checks bids before they reach the wrapped BidService.
type BidValidationService struct {
	inner     BidService
	validator validators.Validator
}

func NewBidValidationService() BidServiceWrapper {
	return &BidValidationService{
		validator: validators.NewHouseBidsValidator(),
	}
}

func (v *BidValidationService) PlaceBid(ctx context.Context, bid models.Bid) (models.Bid, error) {
	if err := v.validator.Validate(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.PlaceBid(ctx, bid)
}

func (v *BidValidationService) ListBids(ctx context.Context, houseID int64) ([]models.Bid, error) {
	return v.inner.ListBids(ctx, houseID)
}

func (v *BidValidationService) Wrap(inner BidService) BidService {
	v.inner = inner
	return v
}

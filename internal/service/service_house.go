package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/store"
	"github.com/MKhiriev/go-house-bids/internal/utils"
	"github.com/MKhiriev/go-house-bids/internal/validators"
	"github.com/MKhiriev/go-house-bids/models"
)

// houseService lists houses and keeps their photos in a PhotoStorage.
type houseService struct {
	houseRepository store.HouseRepository
	photoStorage    store.PhotoStorage

	logger *logger.Logger
}

func NewHouseService(houseRepository store.HouseRepository, photoStorage store.PhotoStorage, logger *logger.Logger) HouseService {
	return &houseService{
		houseRepository: houseRepository,
		photoStorage:    photoStorage,
		logger:          logger,
	}
}

// CreateHouse stores the photo under its sanitized filename and then inserts
// the listing row referencing it.
//
// A filename that sanitizes to nothing is rejected with
// ErrInvalidDataProvided. A photo that was saved before the insert failed is
// left in storage.
func (h *houseService) CreateHouse(ctx context.Context, newHouse models.NewHouse) (models.House, error) {
	log := logger.FromContext(ctx)

	photoName := utils.SecureFilename(newHouse.PhotoName)
	if photoName == "" {
		log.Error().Str("photo_name", newHouse.PhotoName).Msg("photo filename is empty after sanitizing")
		return models.House{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidPhotoName)
	}

	if err := h.photoStorage.Save(ctx, photoName, bytes.NewReader(newHouse.Photo)); err != nil {
		log.Err(err).Str("photo", photoName).Msg("saving photo failed")
		return models.House{}, fmt.Errorf("saving photo failed: %w", err)
	}

	house, err := h.houseRepository.CreateHouse(ctx, models.House{
		Address: newHouse.Address,
		Price:   newHouse.Price,
		Photo:   photoName,
		UserID:  newHouse.UserID,
	})
	if err != nil {
		log.Warn().Err(err).
			Str("photo", photoName).
			Int64("user_id", newHouse.UserID).
			Msg("house insert failed after the photo was saved")
		return models.House{}, fmt.Errorf("house creation failed: %w", err)
	}

	return house, nil
}

func (h *houseService) GetHouse(ctx context.Context, houseID int64) (models.House, error) {
	house, err := h.houseRepository.GetHouse(ctx, houseID)
	if err != nil {
		return models.House{}, fmt.Errorf("house lookup failed: %w", err)
	}
	return house, nil
}

func (h *houseService) ListHouses(ctx context.Context) ([]models.House, error) {
	houses, err := h.houseRepository.ListHouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing houses failed: %w", err)
	}
	return houses, nil
}

// ListHousesByUser returns an empty slice for a user without listings.
func (h *houseService) ListHousesByUser(ctx context.Context, userID int64) ([]models.House, error) {
	houses, err := h.houseRepository.ListHousesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing houses of user %d failed: %w", userID, err)
	}
	if houses == nil {
		houses = []models.House{}
	}
	return houses, nil
}

// OpenPhoto only serves names that are already in sanitized form, so a
// request can never address anything outside the stored uploads.
func (h *houseService) OpenPhoto(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" || utils.SecureFilename(name) != name {
		return nil, store.ErrPhotoNotFound
	}
	return h.photoStorage.Open(ctx, name)
}

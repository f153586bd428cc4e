package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-house-bids/internal/app"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/service"
	"github.com/MKhiriev/go-house-bids/internal/utils"
	"github.com/MKhiriev/go-house-bids/internal/validators"
	"github.com/MKhiriev/go-house-bids/models"
)

// Multipart form fields of the create-house route.
const (
	formAddress = "address"
	formPrice   = "price"
	formPhoto   = "photo"
)

func (h *Handler) listHouses(w http.ResponseWriter, r *http.Request) {
	houses, err := h.services.HouseService.ListHouses(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listHouses", err)
		return
	}

	utils.WriteJSON(w, models.NewHouseResponses(houses), http.StatusOK)
}

// getHouse is the only house route that names the owner.
func (h *Handler) getHouse(w http.ResponseWriter, r *http.Request) {
	houseID, err := int64URLParam(r, houseIDParam)
	if err != nil {
		writeError(w, r, "*Handler.getHouse", err)
		return
	}

	house, err := h.services.HouseService.GetHouse(r.Context(), houseID)
	if err != nil {
		writeError(w, r, "*Handler.getHouse", err)
		return
	}

	resp := models.NewHouseResponse(house)
	resp.UserName = house.OwnerNameOrUnknown()
	utils.WriteJSON(w, resp, http.StatusOK)
}

// createHouse reads a multipart form with address, price and photo fields.
func (h *Handler) createHouse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, "*Handler.createHouse", err)
		return
	}

	newHouse, err := h.readNewHouse(w, r)
	if err != nil {
		writeError(w, r, "*Handler.createHouse", err)
		return
	}
	newHouse.UserID = userID

	house, err := h.services.HouseService.CreateHouse(r.Context(), newHouse)
	if err != nil {
		writeError(w, r, "*Handler.createHouse", err)
		return
	}

	log.Info().Int64("house_id", house.HouseID).Int64("user_id", userID).Msg("house added")
	utils.WriteMessage(w, app.MsgHouseAdded, http.StatusCreated)
}

func (h *Handler) readNewHouse(w http.ResponseWriter, r *http.Request) (models.NewHouse, error) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.NewHouse{}, fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
		}
		return models.NewHouse{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	defer r.MultipartForm.RemoveAll()

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(formPrice)), 64)
	if err != nil {
		return models.NewHouse{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidPrice)
	}

	file, header, err := r.FormFile(formPhoto)
	if errors.Is(err, http.ErrMissingFile) {
		return models.NewHouse{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyPhoto)
	}
	if err != nil {
		return models.NewHouse{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	defer file.Close()

	photo, err := io.ReadAll(file)
	if err != nil {
		return models.NewHouse{}, fmt.Errorf("error reading photo: %w", err)
	}

	return models.NewHouse{
		Address:   r.FormValue(formAddress),
		Price:     price,
		PhotoName: header.Filename,
		Photo:     photo,
	}, nil
}

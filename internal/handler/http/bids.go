package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-house-bids/internal/app"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/service"
	"github.com/MKhiriev/go-house-bids/internal/utils"
	"github.com/MKhiriev/go-house-bids/internal/validators"
	"github.com/MKhiriev/go-house-bids/models"
)

func (h *Handler) listBids(w http.ResponseWriter, r *http.Request) {
	houseID, err := int64URLParam(r, houseIDParam)
	if err != nil {
		writeError(w, r, "*Handler.listBids", err)
		return
	}

	bids, err := h.services.BidService.ListBids(r.Context(), houseID)
	if err != nil {
		writeError(w, r, "*Handler.listBids", err)
		return
	}

	utils.WriteJSON(w, models.NewBidResponses(bids), http.StatusOK)
}

func (h *Handler) placeBid(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, "*Handler.placeBid", err)
		return
	}

	houseID, err := int64URLParam(r, houseIDParam)
	if err != nil {
		writeError(w, r, "*Handler.placeBid", err)
		return
	}

	var req models.BidRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.placeBid", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if req.Amount == nil {
		writeError(w, r, "*Handler.placeBid", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidAmount))
		return
	}

	bid, err := h.services.BidService.PlaceBid(r.Context(), models.Bid{
		Amount:  *req.Amount,
		UserID:  userID,
		HouseID: houseID,
	})
	if err != nil {
		writeError(w, r, "*Handler.placeBid", err)
		return
	}

	log.Info().Int64("bid_id", bid.BidID).Int64("house_id", houseID).Msg("bid placed")
	utils.WriteMessage(w, app.MsgBidPlaced, http.StatusCreated)
}

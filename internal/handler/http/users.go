package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-house-bids/internal/app"
	"github.com/MKhiriev/go-house-bids/internal/utils"
	"github.com/MKhiriev/go-house-bids/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := int64URLParam(r, userIDParam)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	utils.WriteJSON(w, models.NewUserResponse(user), http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, "*Handler.currentUser", err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.currentUser", err)
		return
	}

	utils.WriteJSON(w, models.NewUserResponse(user), http.StatusOK)
}

// updateCurrentUser renames the authenticated user. A missing or empty
// username leaves the account unchanged and still succeeds.
func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateCurrentUser", err)
		return
	}

	var update models.UsernameUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, "*Handler.updateCurrentUser", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err = h.services.UserService.UpdateUsername(r.Context(), userID, update.Username); err != nil {
		writeError(w, r, "*Handler.updateCurrentUser", err)
		return
	}

	utils.WriteMessage(w, app.MsgUsernameUpdated, http.StatusOK)
}

func (h *Handler) listUserHouses(w http.ResponseWriter, r *http.Request) {
	userID, err := int64URLParam(r, userIDParam)
	if err != nil {
		writeError(w, r, "*Handler.listUserHouses", err)
		return
	}

	h.writeHousesOf(w, r, "*Handler.listUserHouses", userID)
}

func (h *Handler) listCurrentUserHouses(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, "*Handler.listCurrentUserHouses", err)
		return
	}

	h.writeHousesOf(w, r, "*Handler.listCurrentUserHouses", userID)
}

func (h *Handler) writeHousesOf(w http.ResponseWriter, r *http.Request, funcName string, userID int64) {
	houses, err := h.services.HouseService.ListHousesByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, funcName, err)
		return
	}

	utils.WriteJSON(w, models.NewHouseResponses(houses), http.StatusOK)
}

func int64URLParam(r *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidPathParam, name, err)
	}
	return value, nil
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-house-bids/internal/app"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/utils"
	"github.com/MKhiriev/go-house-bids/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, "*Handler.register", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, models.User{
		Username: credentials.Username,
		Password: credentials.Password,
	})
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	log.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("user registered")
	utils.WriteMessage(w, app.MsgRegistered, http.StatusCreated)
}

// login answers with {"token": ...} and also sets the token in the
// Authorization response header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, "*Handler.login", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, models.User{
		Username: credentials.Username,
		Password: credentials.Password,
	})
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("%s %s", bearerScheme, token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

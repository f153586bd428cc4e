package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-house-bids/internal/app"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/service"
	"github.com/MKhiriev/go-house-bids/internal/store"
	"github.com/MKhiriev/go-house-bids/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenIsInvalid:      http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	service.ErrFrontendConfigNotFound: http.StatusNotFound,
	service.ErrInvalidFrontendConfig:  http.StatusInternalServerError,

	ErrNoTokenProvided:  http.StatusUnauthorized,
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidForm:      http.StatusBadRequest,
	ErrRequestTooLarge:  http.StatusRequestEntityTooLarge,
	ErrInvalidPathParam: http.StatusNotFound,
	ErrNoUserInContext:  http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrHouseNotFound:         http.StatusNotFound,
	store.ErrPhotoNotFound:         http.StatusNotFound,
	store.ErrInvalidPhotoName:      http.StatusNotFound,
	store.ErrSavingPhoto:           http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessages is ordered: the first matching entry wins, so more specific
// errors come before the ones they wrap.
var errorMessages = []struct {
	target  error
	message string
}{
	{ErrNoTokenProvided, app.MsgNoTokenProvided},
	{ErrNoUserInContext, app.MsgNoTokenProvided},
	{service.ErrTokenIsExpired, app.MsgTokenIsExpired},
	{service.ErrInvalidToken, app.MsgInvalidToken},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{ErrInvalidJSON, app.MsgInvalidJSON},
	{ErrInvalidForm, app.MsgInvalidForm},
	{ErrRequestTooLarge, app.MsgUploadTooLarge},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{store.ErrUsernameAlreadyExists, app.MsgUsernameExists},
	{store.ErrNoUserWasFound, app.MsgUserNotFound},
	{store.ErrHouseNotFound, app.MsgHouseNotFound},
	{store.ErrPhotoNotFound, app.MsgPhotoNotFound},
	{store.ErrInvalidPhotoName, app.MsgPhotoNotFound},
	{service.ErrFrontendConfigNotFound, app.MsgConfigNotFound},
	{ErrInvalidPathParam, app.MsgNotFound},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError never exposes internal error text to the client.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return http.StatusText(status)
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err, status), status)
}

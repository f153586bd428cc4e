package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-house-bids/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrRequestTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp)
	if err, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", err, message)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}

// responseMessage prefers the "message" field of a JSON body and falls back
// to the raw body, then to the status text.
func responseMessage(resp *resty.Response) string {
	var msg models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &msg); err == nil && msg.Message != "" {
		return msg.Message
	}
	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}

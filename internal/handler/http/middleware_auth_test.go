package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-house-bids/internal/service"
	"github.com/MKhiriev/go-house-bids/internal/utils"
	"github.com/MKhiriev/go-house-bids/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lowercase scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "extra spaces around token", header: "Bearer   my-jwt-token ", wantToken: "my-jwt-token"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme and blank token", header: "Bearer   ", wantErr: ErrEmptyToken},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "bare token", header: "my-jwt-token", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrNoTokenProvided)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		parseErr    error
		wantStatus  int
		wantMessage string
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized, wantMessage: "No token provided"},
		{name: "wrong scheme", header: "Token abc", wantStatus: http.StatusUnauthorized, wantMessage: "No token provided"},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantMessage: "No token provided"},
		{name: "expired", header: "Bearer old", parseErr: service.ErrTokenIsExpired, wantStatus: http.StatusUnauthorized, wantMessage: "Token is expired"},
		{name: "invalid", header: "Bearer forged", parseErr: service.ErrTokenIsInvalid, wantStatus: http.StatusUnauthorized, wantMessage: "Invalid token"},
		{name: "valid", header: "Bearer good", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
					if tt.parseErr != nil {
						return models.Token{}, tt.parseErr
					}
					return models.Token{SignedString: tokenString, UserID: 7}, nil
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, int64(7), gotUserID)
				return
			}
			assert.Zero(t, gotUserID)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr.Body))
		})
	}
}

func TestCurrentUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := currentUserID(req)
	assert.ErrorIs(t, err, ErrNoUserInContext)

	id, err := currentUserID(withUser(req, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

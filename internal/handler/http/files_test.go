package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-house-bids/internal/config"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/service"
	"github.com/MKhiriev/go-house-bids/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadedPhoto(t *testing.T) {
	houses := &mockHouseService{
		openPhotoFn: func(_ context.Context, name string) (io.ReadCloser, error) {
			if name == "house.jpg" {
				return io.NopCloser(strings.NewReader("jpeg-bytes")), nil
			}
			return nil, store.ErrPhotoNotFound
		},
	}
	router := newTestHandler(&service.Services{HouseService: houses}).Init()

	rr := doJSON(t, router, http.MethodGet, "/uploads/house.jpg", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
	assert.Equal(t, "jpeg-bytes", rr.Body.String())

	rr = doJSON(t, router, http.MethodGet, "/uploads/missing.jpg", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Photo not found"}`, rr.Body.String())
}

func TestFrontendConfig(t *testing.T) {
	router := newTestHandler(&service.Services{
		AppConfigService: &mockAppConfigService{raw: json.RawMessage(`{"mapsKey":"abc"}`)},
	}).Init()

	rr := doJSON(t, router, http.MethodGet, "/api/config", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"mapsKey":"abc"}`, rr.Body.String())

	router = newTestHandler(&service.Services{
		AppConfigService: &mockAppConfigService{err: service.ErrFrontendConfigNotFound},
	}).Init()

	rr = doJSON(t, router, http.MethodGet, "/api/config", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Config not found"}`, rr.Body.String())
}

func newStaticHandler(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "app.js"), []byte("console.log(1)"), 0o600))

	h := newTestHandler(nil)
	h = NewHandler(h.services, config.Server{StaticDir: dir}, logger.Nop())
	return h.Init()
}

func TestFrontend(t *testing.T) {
	router := newStaticHandler(t)

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{"root serves index", "/", "<html>app</html>"},
		{"existing file", "/static/app.js", "console.log(1)"},
		{"client-side route falls back to index", "/houses/12", "<html>app</html>"},
		{"directory falls back to index", "/static", "<html>app</html>"},
		{"traversal falls back to index", "/../../etc/passwd", "<html>app</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, router, http.MethodGet, tt.path, "", "")
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestFrontend_NoStaticDir(t *testing.T) {
	router := newTestHandler(nil).Init()

	rr := doJSON(t, router, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

package http

import (
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/go-chi/chi/v5"
)

const indexFile = "index.html"

// uploadedPhoto streams a stored listing photo with a content type guessed
// from its extension.
func (h *Handler) uploadedPhoto(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	photo, err := h.services.HouseService.OpenPhoto(r.Context(), name)
	if err != nil {
		writeError(w, r, "*Handler.uploadedPhoto", err)
		return
	}
	defer photo.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, photo); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.uploadedPhoto").Str("photo", name).Msg("error streaming photo")
	}
}

func (h *Handler) frontendConfig(w http.ResponseWriter, r *http.Request) {
	raw, err := h.services.AppConfigService.FrontendConfig(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.frontendConfig", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// frontend serves the built single-page app. Existing files are served as
// is; every other path gets index.html so that client-side routes work on
// reload. Paths that are not valid fs paths (e.g. containing "..") are
// never looked up.
func (h *Handler) frontend(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		h.notFound(w, r)
		return
	}
	if h.static == nil {
		h.notFound(w, r)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/")
	if name != "" && fs.ValidPath(name) {
		if info, err := fs.Stat(h.static, name); err == nil && !info.IsDir() {
			http.ServeFileFS(w, r, h.static, name)
			return
		}
	}

	if _, err := fs.Stat(h.static, indexFile); err != nil {
		h.notFound(w, r)
		return
	}
	serveIndex(w, r, h.static)
}

// serveIndex writes index.html directly. http.ServeFileFS would redirect
// requests whose path ends in "/index.html".
func serveIndex(w http.ResponseWriter, r *http.Request, static fs.FS) {
	f, err := static.Open(indexFile)
	if err != nil {
		writeError(w, r, "serveIndex", err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, f)
}

package http

import (
	"io/fs"
	"os"

	"github.com/MKhiriev/go-house-bids/internal/config"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/service"
)

type Handler struct {
	services *service.Services

	// maxUploadSize caps the body of a house listing request.
	maxUploadSize int64
	// static holds the built front-end. Nil disables the SPA routes.
	static fs.FS

	cfg    config.Server
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services:      services,
		maxUploadSize: cfg.MaxUploadSize,
		cfg:           cfg,
		logger:        logger,
	}
	if cfg.StaticDir != "" {
		h.static = os.DirFS(cfg.StaticDir)
	}

	logger.Info().Str("static_dir", cfg.StaticDir).Msg("http handler created")
	return h
}

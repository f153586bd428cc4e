package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-house-bids/internal/config"
	"github.com/MKhiriev/go-house-bids/internal/logger"
)

type appConfigService struct {
	frontendConfigPath string

	logger *logger.Logger
}

func NewAppConfigService(cfg config.Server, logger *logger.Logger) AppConfigService {
	return &appConfigService{
		frontendConfigPath: cfg.FrontendConfigPath,
		logger:             logger,
	}
}

// FrontendConfig reads the front-end config file on every call so that it
// can be edited without restarting the server.
func (s *appConfigService) FrontendConfig(ctx context.Context) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.frontendConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", s.frontendConfigPath).Msg("frontend config file does not exist")
		return nil, ErrFrontendConfigNotFound
	}
	if err != nil {
		log.Err(err).Str("path", s.frontendConfigPath).Msg("error reading frontend config")
		return nil, fmt.Errorf("error reading frontend config: %w", err)
	}

	if !json.Valid(data) {
		log.Error().Str("path", s.frontendConfigPath).Msg("frontend config is not valid JSON")
		return nil, ErrInvalidFrontendConfig
	}

	return json.RawMessage(data), nil
}

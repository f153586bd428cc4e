// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.Files.Backend {
	case PhotoBackendFS:
		if cfg.Storage.Files.UploadsDir == "" {
			return ErrInvalidStorageConfigs
		}
	case PhotoBackendGridFS:
		if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

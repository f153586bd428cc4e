package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied to every field no other source has set.
// There is deliberately no default for App.TokenSignKey.
const (
	DefaultTokenIssuer        = "go-house-bids"
	DefaultTokenDuration      = 24 * time.Hour
	DefaultDBDriver           = DriverSQLite
	DefaultDSN                = "house_bids.db"
	DefaultPhotoBackend       = PhotoBackendFS
	DefaultUploadsDir         = "uploads"
	DefaultMongoBucket        = "photos"
	DefaultHTTPAddress        = "0.0.0.0:5005"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultMaxUploadSize      = 10 << 20
	DefaultStaticDir          = "react_build"
	DefaultFrontendConfigPath = "config.json"
)

// Supported values of [DB.Driver].
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Supported values of [Files.Backend].
const (
	PhotoBackendFS     = "fs"
	PhotoBackendGridFS = "gridfs"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: DefaultDBDriver,
				DSN:    DefaultDSN,
			},
			Files: Files{
				Backend:    DefaultPhotoBackend,
				UploadsDir: DefaultUploadsDir,
			},
			Mongo: Mongo{
				Bucket: DefaultMongoBucket,
			},
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			MaxUploadSize:      DefaultMaxUploadSize,
			StaticDir:          DefaultStaticDir,
			FrontendConfigPath: DefaultFrontendConfigPath,
		},
	}
}

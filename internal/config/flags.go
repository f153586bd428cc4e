package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (sqlite3, pgx)
//	-f uploads directory
//	-photo-backend photo storage backend (fs, gridfs)
//	-mongo-uri MongoDB URI for the gridfs backend
//	-mongo-db MongoDB database for the gridfs backend
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-password-hash-cost bcrypt cost
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-upload-size max listing request size in bytes
//	-static-dir front-end build directory
//	-frontend-config front-end config JSON file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-house-bids", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var uploadsDir, photoBackend string
	var mongoURI, mongoDatabase string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var passwordHashCost int
	var maxUploadSize int64
	var staticDir, frontendConfig string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&uploadsDir, "f", "", "Uploads directory")
	fs.StringVar(&photoBackend, "photo-backend", "", "Photo storage backend (fs, gridfs)")
	fs.StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI")
	fs.StringVar(&mongoDatabase, "mongo-db", "", "MongoDB database")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Max listing request size in bytes")
	fs.StringVar(&staticDir, "static-dir", "", "Front-end build directory")
	fs.StringVar(&frontendConfig, "frontend-config", "", "Front-end config JSON file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			PasswordHashCost: passwordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Files: Files{
				Backend:    photoBackend,
				UploadsDir: uploadsDir,
			},
			Mongo: Mongo{
				URI:      mongoURI,
				Database: mongoDatabase,
			},
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			MaxUploadSize:      maxUploadSize,
			StaticDir:          staticDir,
			FrontendConfigPath: frontendConfig,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any host other than "localhost" must
// be a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

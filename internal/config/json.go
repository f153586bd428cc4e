package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations ("24h", "30s").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Backend    string `json:"backend"`
			UploadsDir string `json:"uploads_dir"`
		} `json:"files,omitempty"`

		Mongo struct {
			URI      string `json:"uri"`
			Database string `json:"database"`
			Bucket   string `json:"bucket"`
		} `json:"mongo,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		MaxUploadSize      int64    `json:"max_upload_size"`
		StaticDir          string   `json:"static_dir"`
		FrontendConfigPath string   `json:"frontend_config"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Backend:    jsonCfg.Storage.Files.Backend,
				UploadsDir: jsonCfg.Storage.Files.UploadsDir,
			},
			Mongo: Mongo{
				URI:      jsonCfg.Storage.Mongo.URI,
				Database: jsonCfg.Storage.Mongo.Database,
				Bucket:   jsonCfg.Storage.Mongo.Bucket,
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:      jsonCfg.Server.MaxUploadSize,
			StaticDir:          jsonCfg.Server.StaticDir,
			FrontendConfigPath: jsonCfg.Server.FrontendConfigPath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// Defaults of the command-line client.
const (
	DefaultClientServerURL      = "http://localhost:5005"
	DefaultClientRequestTimeout = 15 * time.Second
)

// Client configures the command-line API client.
type Client struct {
	// ServerURL is the base URL of the go-house-bids server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every request made by the client.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a bearer token used for authenticated commands.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
}

type clientEnv struct {
	Client Client `envPrefix:"CLIENT_"`
}

// GetClientConfig builds the client configuration from flags, then
// environment variables, then defaults. It returns the arguments left after
// the flags, which hold the command to run.
func GetClientConfig(args []string, output io.Writer) (Client, []string, error) {
	flagCfg, rest, err := parseClientFlags(args, output)
	if err != nil {
		return Client{}, nil, err
	}

	var envCfg clientEnv
	if err = parseEnv(&envCfg); err != nil {
		return Client{}, nil, err
	}

	cfg := flagCfg
	for _, src := range []Client{envCfg.Client, defaultClientConfig()} {
		if err = mergo.Merge(&cfg, src); err != nil {
			return Client{}, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, rest, nil
}

func parseClientFlags(args []string, output io.Writer) (Client, []string, error) {
	fs := flag.NewFlagSet("house-bids-client", flag.ContinueOnError)
	fs.SetOutput(output)

	var cfg Client
	fs.StringVar(&cfg.ServerURL, "s", "", "Server base URL")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&cfg.Token, "token", "", "Bearer token")

	if err := fs.Parse(args); err != nil {
		return Client{}, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

func defaultClientConfig() Client {
	return Client{
		ServerURL:      DefaultClientServerURL,
		RequestTimeout: DefaultClientRequestTimeout,
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-house-bids/internal/adapter"
	"github.com/MKhiriev/go-house-bids/internal/client"
	"github.com/MKhiriev/go-house-bids/internal/config"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.New(os.Stderr, "go-house-bids-client")
	cfg, args, err := config.GetClientConfig(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(args) == 1 && args[0] == "version" {
		fmt.Printf("%s (%s, %s)\n", orNA(info.BuildVersion()), orNA(info.BuildDate()), orNA(info.BuildCommit()))
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			app.Usage(os.Stderr)
		}
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

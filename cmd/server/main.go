package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-house-bids/internal/config"
	httpHandler "github.com/MKhiriev/go-house-bids/internal/handler/http"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/server"
	"github.com/MKhiriev/go-house-bids/internal/service"
	"github.com/MKhiriev/go-house-bids/internal/store"
	"github.com/MKhiriev/go-house-bids/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-house-bids-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("photo_backend", cfg.Storage.Files.Backend).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, *cfg, log)
	handler := httpHandler.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

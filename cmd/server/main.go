package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/heart-journal/internal/config"
	"github.com/MKhiriev/heart-journal/internal/handler"
	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/server"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/internal/store"
	"github.com/MKhiriev/heart-journal/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("heart-journal-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("heart-journal-server", cfg.App.LogLevel)
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	storage, err := store.NewSlotStorage(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage")
	}
	defer storage.Close()

	services, err := service.NewServices(storage, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services.JournalService, *cfg, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

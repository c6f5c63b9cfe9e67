package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/heart-journal/internal/client"
	"github.com/MKhiriev/heart-journal/internal/config"
	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/tui"
	"github.com/MKhiriev/heart-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("heart-journal-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("heart-journal-client", cfg.LogLevel)

	journal, closer, err := client.NewJournal(context.Background(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create journal")
	}

	ui := tui.New(journal, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app := client.NewApp(journal, ui, closer, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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

package main

import (
	"fmt"

	"github.com/equanote/equanote/internal/adapter"
	"github.com/equanote/equanote/internal/client"
	"github.com/equanote/equanote/internal/config"
	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/internal/service"
	"github.com/equanote/equanote/internal/store"
	"github.com/equanote/equanote/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("equanote-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("unknown log level, keeping default")
	}

	gateway, err := adapter.NewHTTPRemoteGateway(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote gateway")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, gateway, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

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

package main

import (
	"fmt"

	"github.com/akhmetov/go-remind-sync/internal/config"
	"github.com/akhmetov/go-remind-sync/internal/handler"
	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/internal/server"
	"github.com/akhmetov/go-remind-sync/internal/service"
	"github.com/akhmetov/go-remind-sync/internal/store"
	"github.com/akhmetov/go-remind-sync/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("remind-sync-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, &utils.UUIDGenerator{}, cfg.Auth, log)

	handlers, err := handler.NewHandlers(services, storages.Classifier, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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

package main

import (
	"context"
	"fmt"

	"github.com/Dev-vesper/notepad/internal/config"
	"github.com/Dev-vesper/notepad/internal/handler"
	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/server"
	"github.com/Dev-vesper/notepad/internal/service"
	"github.com/Dev-vesper/notepad/internal/store"
	"github.com/Dev-vesper/notepad/internal/workers"
	"github.com/Dev-vesper/notepad/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("notepad-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit, cfg.App.Version)
	cfg.App.Version = buildInfo.Version
	printBuildInfo(buildInfo)

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("users_dir", cfg.Storage.Files.UsersDir).
		Bool("db", cfg.Storage.DB.DSN != "").
		Dur("check_interval", cfg.Workers.CheckInterval).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages.DocumentStorage, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(storages.DocumentStorage, cfg.Workers, log)

	srv, err := server.NewServer(handlers, cfg.Server, log, server.WithWorkers(backgroundWorkers))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}

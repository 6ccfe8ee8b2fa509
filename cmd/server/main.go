package main

import (
	"context"
	"fmt"

	"github.com/tecnoscan/tecnoscan-api/internal/config"
	"github.com/tecnoscan/tecnoscan-api/internal/handler"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/payment"
	"github.com/tecnoscan/tecnoscan-api/internal/server"
	"github.com/tecnoscan/tecnoscan-api/internal/service"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
	"github.com/tecnoscan/tecnoscan-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("tecnoscan-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, *cfg, log)
	payments := payment.NewClient(cfg.Payment, log)

	handlers, err := handler.NewHandlers(services, payments, db, *cfg, log)
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

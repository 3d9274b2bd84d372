package main

import (
	"context"
	"fmt"

	"github.com/anteater-game/server/internal/clock"
	"github.com/anteater-game/server/internal/config"
	httphandler "github.com/anteater-game/server/internal/handler/http"
	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/server"
	"github.com/anteater-game/server/internal/service"
	"github.com/anteater-game/server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("anteater-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.Driver == config.DriverPostgres {
		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	repos := store.NewRepositories(db, log)
	services := service.NewServices(repos, *cfg, clock.New(), log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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

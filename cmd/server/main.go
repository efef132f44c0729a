package main

import (
	"context"
	"fmt"

	"github.com/flightsearch/flightsearch/internal/adsbdb"
	"github.com/flightsearch/flightsearch/internal/config"
	myHTTP "github.com/flightsearch/flightsearch/internal/handler/http"
	"github.com/flightsearch/flightsearch/internal/logger"
	"github.com/flightsearch/flightsearch/internal/server"
	"github.com/flightsearch/flightsearch/internal/service"
	"github.com/flightsearch/flightsearch/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("flight-search-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.TokenSignKey == config.DefaultTokenSignKey {
		log.Warn().Msg("running with the default token sign key, set APP_TOKEN_SIGN_KEY in production")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	upstream := adsbdb.NewClient(cfg.Upstream, log)

	services := service.NewServices(storages, upstream, cfg, log)

	handler := myHTTP.NewHandler(services, cfg.App.ServiceName, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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

package service

import (
	"github.com/flightsearch/flightsearch/internal/adsbdb"
	"github.com/flightsearch/flightsearch/internal/config"
	"github.com/flightsearch/flightsearch/internal/logger"
	"github.com/flightsearch/flightsearch/internal/store"
)

type Services struct {
	AuthService    AuthService
	FlightsService FlightsService
}

func NewServices(storages *store.Storages, upstream adsbdb.Client, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		FlightsService: NewFlightsService(upstream, NewStatsCache(cfg.Flights.StatsCacheTTL), logger),
	}
}

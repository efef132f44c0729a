package http

import (
	"github.com/flightsearch/flightsearch/internal/logger"
	"github.com/flightsearch/flightsearch/internal/service"
)

type Handler struct {
	services *service.Services

	// serviceName is reported by the health probe.
	serviceName string

	logger *logger.Logger
}

func NewHandler(services *service.Services, serviceName string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		serviceName: serviceName,
		logger:      logger,
	}
}

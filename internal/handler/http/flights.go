package http

import (
	"errors"
	"net/http"

	"github.com/flightsearch/flightsearch/internal/adsbdb"
	"github.com/flightsearch/flightsearch/internal/logger"
	"github.com/flightsearch/flightsearch/internal/service"
	"github.com/flightsearch/flightsearch/internal/utils"
	"github.com/flightsearch/flightsearch/models"
)

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	popular, err := h.services.FlightsService.PopularStats(ctx)
	if err != nil {
		switch {
		case errors.Is(err, adsbdb.ErrUpstreamUnavailable):
			log.Err(err).Msg("upstream stats unavailable")
			writeError(w, "Failed to fetch stats", http.StatusBadGateway)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during stats fetch")
			writeError(w, "Failed to fetch stats", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.StatsResponse{Popular: popular}, http.StatusOK)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("query")
	searchType := r.URL.Query().Get("type")

	result, err := h.services.FlightsService.Search(ctx, query, searchType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("empty search query")
			writeError(w, "Query is required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUnsupportedSearchType):
			log.Err(err).Str("type", searchType).Msg("unsupported search type")
			writeError(w, "Unsupported search type", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrNoDataFound):
			writeError(w, "No data found", http.StatusNotFound)
			return
		case errors.Is(err, adsbdb.ErrUpstreamUnavailable):
			log.Err(err).Str("query", query).Msg("upstream search unavailable")
			writeError(w, "Failed to fetch search result", http.StatusBadGateway)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during search")
			writeError(w, "Failed to fetch search result", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.SearchResponse{
		OK:   true,
		Type: result.Type,
		Data: result.Data,
	}, http.StatusOK)
}

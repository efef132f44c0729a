package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"github.com/flightsearch/flightsearch/internal/adsbdb"
	"github.com/flightsearch/flightsearch/internal/logger"
	"github.com/flightsearch/flightsearch/models"
)

// aircraftQueryPattern matches tail/registration-style identifiers: exactly
// six alphanumeric characters.
var aircraftQueryPattern = regexp.MustCompile(`^[A-Za-z0-9]{6}$`)

// flightsService is the concrete implementation of FlightsService.
type flightsService struct {
	upstream adsbdb.Client
	cache    *StatsCache

	// group collapses concurrent cache misses into a single upstream stats
	// call; late arrivals share its result instead of racing to overwrite
	// the slot.
	group singleflight.Group

	logger *logger.Logger
}

// NewFlightsService constructs a FlightsService over the given upstream
// client and cache. The cache is injected so its lifetime and TTL stay under
// the caller's control.
func NewFlightsService(upstream adsbdb.Client, cache *StatsCache, logger *logger.Logger) FlightsService {
	return &flightsService{
		upstream: upstream,
		cache:    cache,
		logger:   logger,
	}
}

// PopularStats serves the popular-query snapshot.
//
// A live cached snapshot is returned unchanged with no upstream call. On a
// miss, one upstream stats fetch runs (concurrent misses await it via
// singleflight), its payload is normalised into typed popular-query lists,
// stored with a fresh TTL, and returned. Upstream failure surfaces as
// adsbdb.ErrUpstreamUnavailable; there is no retry and no stale fallback.
func (s *flightsService) PopularStats(ctx context.Context) (models.PopularStats, error) {
	if snapshot, ok := s.cache.Get(); ok {
		return snapshot, nil
	}

	// The fetch serves every waiting caller, so it must not die with the
	// first caller's request. The upstream client's own timeout still
	// bounds the call.
	fetchCtx := context.WithoutCancel(ctx)

	value, err, _ := s.group.Do(statsCacheKey, func() (any, error) {
		// A previous flight may have repopulated the cache while this
		// caller was waiting for the lock.
		if snapshot, ok := s.cache.Get(); ok {
			return snapshot, nil
		}

		stats, err := s.upstream.Stats(fetchCtx)
		if err != nil {
			return nil, err
		}

		snapshot := normalizePopularStats(stats)
		s.cache.Set(snapshot)

		return snapshot, nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("fetching upstream stats failed")
		return models.PopularStats{}, fmt.Errorf("fetching upstream stats failed: %w", err)
	}

	return value.(models.PopularStats), nil
}

// Search resolves a free-text query to one provider lookup and returns its
// payload.
//
// The query is trimmed and must be non-empty (ErrInvalidDataProvided). An
// explicit type must be one of the three recognised values
// (ErrUnsupportedSearchType); an empty type is auto-detected via
// DetectSearchType. A provider "unknown ..." answer becomes ErrNoDataFound.
func (s *flightsService) Search(ctx context.Context, query string, explicitType string) (models.SearchResult, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		log.Error().Msg("empty search query")
		return models.SearchResult{}, ErrInvalidDataProvided
	}

	searchType := models.SearchType(strings.TrimSpace(explicitType))
	if searchType == "" {
		searchType = DetectSearchType(query)
	} else if !searchType.Valid() {
		log.Error().Str("type", string(searchType)).Msg("unsupported search type")
		return models.SearchResult{}, ErrUnsupportedSearchType
	}

	var data json.RawMessage
	var err error
	switch searchType {
	case models.SearchTypeCallsign:
		data, err = s.upstream.Callsign(ctx, query)
	case models.SearchTypeAircraft:
		data, err = s.upstream.Aircraft(ctx, query)
	case models.SearchTypeAirline:
		data, err = s.upstream.Airline(ctx, query)
	}

	if err != nil {
		if errors.Is(err, adsbdb.ErrUnknownRecord) {
			return models.SearchResult{}, ErrNoDataFound
		}

		log.Err(err).Str("query", query).Str("type", string(searchType)).Msg("upstream lookup failed")
		return models.SearchResult{}, fmt.Errorf("upstream lookup failed: %w", err)
	}

	return models.SearchResult{Type: searchType, Data: data}, nil
}

// DetectSearchType classifies a query by the provider's identifier
// conventions, in this exact priority:
//  1. exactly 3 characters → airline (IATA/ICAO codes are short)
//  2. exactly 6 alphanumerics → aircraft (tail/registration numbers)
//  3. anything else → callsign (free-form)
//
// The ordering is a heuristic tie-break specific to adsbdb; a 3-character
// registration would still be routed to the airline lookup.
func DetectSearchType(query string) models.SearchType {
	switch {
	case utf8.RuneCountInString(query) == 3:
		return models.SearchTypeAirline
	case aircraftQueryPattern.MatchString(query):
		return models.SearchTypeAircraft
	default:
		return models.SearchTypeCallsign
	}
}

// normalizePopularStats turns the provider's daily counters into typed
// popular-query lists. Entries whose reference URL is missing or points at
// the unknown-callsign sentinel are dropped; surviving entries keep their
// count and take the last path segment of the URL as the query.
func normalizePopularStats(stats adsbdb.Stats) models.PopularStats {
	return models.PopularStats{
		Callsign: mapStatsEntries(stats.Daily.Callsign, models.SearchTypeCallsign),
		Aircraft: mapStatsEntries(stats.Daily.Aircraft, models.SearchTypeAircraft),
		Airline:  mapStatsEntries(stats.Daily.Airline, models.SearchTypeAirline),
	}
}

func mapStatsEntries(entries []adsbdb.StatsEntry, searchType models.SearchType) []models.PopularQueryItem {
	items := make([]models.PopularQueryItem, 0, len(entries))
	for _, entry := range entries {
		if entry.URL == "" || entry.URL == adsbdb.UnknownCallsignURL {
			continue
		}

		query := entry.URL
		if idx := strings.LastIndex(entry.URL, "/"); idx >= 0 {
			query = entry.URL[idx+1:]
		}

		items = append(items, models.PopularQueryItem{
			Type:  searchType,
			Query: query,
			Count: entry.Count,
		})
	}

	return items
}

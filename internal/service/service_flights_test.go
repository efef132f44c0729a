package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/flightsearch/flightsearch/internal/adsbdb"
	"github.com/flightsearch/flightsearch/internal/logger"
	"github.com/flightsearch/flightsearch/internal/mock"
	"github.com/flightsearch/flightsearch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFlightsService(t *testing.T, ttl time.Duration) (FlightsService, *mock.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	upstream := mock.NewMockClient(ctrl)
	svc := NewFlightsService(upstream, NewStatsCache(ttl), logger.NewLogger("test"))
	return svc, upstream
}

func TestDetectSearchType(t *testing.T) {
	tests := []struct {
		query string
		want  models.SearchType
	}{
		{"BAW", models.SearchTypeAirline},
		{"AFL", models.SearchTypeAirline},
		{"ab1", models.SearchTypeAirline},
		{"ФАВ", models.SearchTypeAirline}, // three characters, six bytes
		{"ABC123", models.SearchTypeAircraft},
		{"G-EZBZ", models.SearchTypeCallsign}, // six chars but contains a dash
		{"BA123", models.SearchTypeCallsign},
		{"RYR2424", models.SearchTypeCallsign},
		{"x", models.SearchTypeCallsign},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSearchType(tt.query))
		})
	}
}

func TestFlightsService_Search_AutoDetect(t *testing.T) {
	svc, upstream := newTestFlightsService(t, time.Minute)
	ctx := context.Background()
	payload := json.RawMessage(`{"flightroute":{"callsign":"BA123"}}`)

	upstream.EXPECT().Callsign(ctx, "BA123").Return(payload, nil)

	result, err := svc.Search(ctx, " BA123 ", "")
	require.NoError(t, err)
	assert.Equal(t, models.SearchTypeCallsign, result.Type)
	assert.JSONEq(t, string(payload), string(result.Data))
}

func TestFlightsService_Search_ExplicitType(t *testing.T) {
	svc, upstream := newTestFlightsService(t, time.Minute)
	ctx := context.Background()
	payload := json.RawMessage(`{"aircraft":{"registration":"BAW"}}`)

	// without the explicit type "BAW" would route to the airline lookup
	upstream.EXPECT().Aircraft(ctx, "BAW").Return(payload, nil)

	result, err := svc.Search(ctx, "BAW", "aircraft")
	require.NoError(t, err)
	assert.Equal(t, models.SearchTypeAircraft, result.Type)
}

func TestFlightsService_Search_EmptyQuery(t *testing.T) {
	svc, _ := newTestFlightsService(t, time.Minute)

	_, err := svc.Search(context.Background(), "   ", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFlightsService_Search_UnsupportedType(t *testing.T) {
	svc, _ := newTestFlightsService(t, time.Minute)

	_, err := svc.Search(context.Background(), "BA123", "weather")
	assert.ErrorIs(t, err, ErrUnsupportedSearchType)
}

func TestFlightsService_Search_UnknownRecord(t *testing.T) {
	svc, upstream := newTestFlightsService(t, time.Minute)
	ctx := context.Background()

	upstream.EXPECT().Airline(ctx, "ZZZ").Return(nil, adsbdb.ErrUnknownRecord)

	_, err := svc.Search(ctx, "ZZZ", "")
	assert.ErrorIs(t, err, ErrNoDataFound)
}

func TestFlightsService_Search_UpstreamFailure(t *testing.T) {
	svc, upstream := newTestFlightsService(t, time.Minute)
	ctx := context.Background()

	upstream.EXPECT().Callsign(ctx, "BA123").Return(nil, adsbdb.ErrUpstreamUnavailable)

	_, err := svc.Search(ctx, "BA123", "")
	assert.ErrorIs(t, err, adsbdb.ErrUpstreamUnavailable)
	assert.False(t, errors.Is(err, ErrNoDataFound))
}

func upstreamStats() adsbdb.Stats {
	return adsbdb.Stats{
		Daily: adsbdb.DailyStats{
			Callsign: []adsbdb.StatsEntry{
				{URL: "/v0/callsign/RYR2424", Count: 12},
				{URL: adsbdb.UnknownCallsignURL, Count: 99},
				{URL: "", Count: 5},
			},
			Aircraft: []adsbdb.StatsEntry{
				{URL: "/v0/aircraft/ABC123", Count: 3},
			},
		},
	}
}

func TestFlightsService_PopularStats_Normalization(t *testing.T) {
	svc, upstream := newTestFlightsService(t, time.Minute)
	ctx := context.Background()

	upstream.EXPECT().Stats(gomock.Any()).Return(upstreamStats(), nil)

	stats, err := svc.PopularStats(ctx)
	require.NoError(t, err)

	// sentinel and empty URLs are dropped
	require.Len(t, stats.Callsign, 1)
	assert.Equal(t, models.PopularQueryItem{
		Type:  models.SearchTypeCallsign,
		Query: "RYR2424",
		Count: 12,
	}, stats.Callsign[0])

	require.Len(t, stats.Aircraft, 1)
	assert.Equal(t, "ABC123", stats.Aircraft[0].Query)

	// absent category stays an empty, non-nil list
	assert.NotNil(t, stats.Airline)
	assert.Empty(t, stats.Airline)
}

func TestFlightsService_PopularStats_CacheHit(t *testing.T) {
	svc, upstream := newTestFlightsService(t, time.Minute)
	ctx := context.Background()

	// exactly one upstream call despite two reads
	upstream.EXPECT().Stats(gomock.Any()).Return(upstreamStats(), nil).Times(1)

	first, err := svc.PopularStats(ctx)
	require.NoError(t, err)

	second, err := svc.PopularStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFlightsService_PopularStats_ConcurrentMisses(t *testing.T) {
	svc, upstream := newTestFlightsService(t, time.Minute)

	const callers = 8

	started := make(chan struct{})
	release := make(chan struct{})

	// the fetch blocks until released, so every caller below piles up on
	// the same cache miss; exactly one upstream call may happen
	upstream.EXPECT().Stats(gomock.Any()).DoAndReturn(func(context.Context) (adsbdb.Stats, error) {
		close(started)
		<-release
		return upstreamStats(), nil
	}).Times(1)

	var wg sync.WaitGroup
	results := make([]models.PopularStats, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.PopularStats(context.Background())
		}(i)
	}

	<-started
	time.Sleep(10 * time.Millisecond) // let the remaining callers join the flight
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
}

func TestFlightsService_PopularStats_FetchSurvivesCallerCancel(t *testing.T) {
	svc, upstream := newTestFlightsService(t, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// cancelling the requesting caller must not kill the shared fetch
	upstream.EXPECT().Stats(gomock.Any()).DoAndReturn(func(fetchCtx context.Context) (adsbdb.Stats, error) {
		cancel()
		if err := fetchCtx.Err(); err != nil {
			return adsbdb.Stats{}, err
		}
		return upstreamStats(), nil
	})

	stats, err := svc.PopularStats(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, stats.Callsign)
}

func TestFlightsService_PopularStats_CacheExpiry(t *testing.T) {
	svc, upstream := newTestFlightsService(t, 20*time.Millisecond)
	ctx := context.Background()

	upstream.EXPECT().Stats(gomock.Any()).Return(upstreamStats(), nil).Times(2)

	_, err := svc.PopularStats(ctx)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = svc.PopularStats(ctx)
	require.NoError(t, err)
}

func TestFlightsService_PopularStats_UpstreamFailure(t *testing.T) {
	svc, upstream := newTestFlightsService(t, time.Minute)
	ctx := context.Background()

	upstream.EXPECT().Stats(gomock.Any()).Return(adsbdb.Stats{}, adsbdb.ErrUpstreamUnavailable)

	_, err := svc.PopularStats(ctx)
	assert.ErrorIs(t, err, adsbdb.ErrUpstreamUnavailable)

	// a failure must not poison the cache: the next call retries upstream
	upstream.EXPECT().Stats(gomock.Any()).Return(upstreamStats(), nil)
	_, err = svc.PopularStats(ctx)
	require.NoError(t, err)
}

func TestStatsCache_GetBeforeSet(t *testing.T) {
	cache := NewStatsCache(time.Minute)

	_, ok := cache.Get()
	assert.False(t, ok)

	cache.Set(models.PopularStats{})
	_, ok = cache.Get()
	assert.True(t, ok)
}

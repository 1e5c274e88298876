package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/config"
	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/pkg/errors"
)

func testQuery() domain.RouteQuery {
	return domain.RouteQuery{
		From: domain.Stop{Name: "Rossio", Lat: 38.7139, Lon: -9.1394},
		To:   domain.Stop{Name: "Belém", Lat: 38.6972, Lon: -9.2064},
		Date: "2025-06-01",
		Time: "10:30",
	}
}

func newTestClient(baseURL string) *client {
	return &client{
		httpClient: http.DefaultClient,
		baseURL:    baseURL,
		logger:     zap.NewNop(),
	}
}

func TestClient_SearchRoute(t *testing.T) {
	t.Run("successful response is decoded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/routes", r.URL.Path)
			assert.Equal(t, "2025-06-01", r.URL.Query().Get("date"))
			assert.Equal(t, "10:30", r.URL.Query().Get("time"))
			assert.NotEmpty(t, r.URL.Query().Get("from_lat"))
			assert.NotEmpty(t, r.URL.Query().Get("to_lon"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"legs": [
					{"mode": "walk", "duration_minutes": 5},
					{"mode": "tram", "duration_minutes": 25, "agency": "Carris", "route_name": "15E"}
				],
				"duration_minutes": 30,
				"transfers": 0,
				"origin": "Rossio",
				"destination": "Belém",
				"summary": "Tram 15E towards Algés"
			}`))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).SearchRoute(context.Background(), testQuery())
		require.NoError(t, err)

		assert.Equal(t, 30, result.DurationMinutes)
		require.Len(t, result.Legs, 2)
		assert.Equal(t, domain.ModeTram, result.Legs[1].Mode)
		require.NotNil(t, result.Transfers)
		assert.Equal(t, 0, *result.Transfers)
	})

	t.Run("error response with detail field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"detail": "no itinerary found for requested time"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).SearchRoute(context.Background(), testQuery())
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUpstreamFetch)
		assert.Contains(t, err.Error(), "no itinerary found")
	})

	t.Run("error response without detail falls back to status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream exploded"))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).SearchRoute(context.Background(), testQuery())
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUpstreamFetch)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("malformed body on success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).SearchRoute(context.Background(), testQuery())
		assert.ErrorIs(t, err, errors.ErrUpstreamFetch)
	})

	t.Run("unreachable service", func(t *testing.T) {
		_, err := newTestClient("http://127.0.0.1:1").SearchRoute(context.Background(), testQuery())
		assert.ErrorIs(t, err, errors.ErrUpstreamFetch)
	})
}

func TestNewClient(t *testing.T) {
	cfg := &config.RoutingConfig{BaseURL: "http://localhost:9000", RequestTimeout: 15}
	assert.NotNil(t, NewClient(cfg, zap.NewNop()))
}

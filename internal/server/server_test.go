// internal/server/server_test.go

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentfactory/internal/config"
	"contentfactory/internal/domain/trend"
	"contentfactory/internal/service/factory"
)

type stubProvider struct {
	status factory.Status
	trends trend.Summary
}

func (s stubProvider) Status() factory.Status      { return s.status }
func (s stubProvider) LatestTrends() trend.Summary { return s.trends }

func testServer(provider stubProvider) *Server {
	return NewServer(config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		CorsOrigins:  []string{"*"},
	}, provider)
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(stubProvider{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestStatusEndpoint(t *testing.T) {
	provider := stubProvider{
		status: factory.Status{
			CyclesRun:        3,
			ContentCreated:   12,
			EpisodesProduced: 4,
		},
	}
	srv := testServer(provider)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got factory.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 3, got.CyclesRun)
	assert.Equal(t, 12, got.ContentCreated)
	assert.Equal(t, 4, got.EpisodesProduced)
}

func TestLatestTrendsEndpoint(t *testing.T) {
	provider := stubProvider{
		trends: trend.Summary{
			ViralKeywords:   []string{"ai"},
			BestContentType: "video",
			ViralScore:      72,
		},
	}
	srv := testServer(provider)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trends/latest", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got trend.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "video", got.BestContentType)
	assert.Equal(t, 72, got.ViralScore)
}

func TestLatestTrendsBeforeFirstCycle(t *testing.T) {
	srv := testServer(stubProvider{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trends/latest", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No cycle has completed yet")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer(stubProvider{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

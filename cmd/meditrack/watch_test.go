package main

import (
	"context"
	"meditrack-client/internal/app/services/shared/transport"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRouter(t *testing.T) {
	app, _ := newTestApp(t, "http://unused/v1")
	app.Registry = prometheus.NewRegistry()
	app.Metrics = transport.NewMetrics(app.Registry)
	app.Metrics.ObserveRefresh(transport.RefreshOutcomeSucceeded)
	loginTestApp(t, app, "T1")

	state := &syncStatus{}
	state.record(fixedNow, 4)
	router := newMetricsRouter(app, state)

	t.Run("Serves the registry", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `meditrack_client_token_refresh_total{outcome="succeeded"} 1`)
	})

	t.Run("Reports health and the last sync", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		var response healthResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "ok", response.Status)
		assert.True(t, response.Authenticated)
		assert.Equal(t, 4, response.LastCount)
		assert.True(t, fixedNow.Equal(response.LastSync))
	})

	t.Run("Reports a dropped session", func(t *testing.T) {
		app.Client.Store.Clear(context.Background())

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		var response healthResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.False(t, response.Authenticated)
	})
}

package main

import (
	"context"
	"errors"
	"meditrack-client/internal/pkg/exceptions"
	"meditrack-client/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type healthResponse struct {
	Status        string    `json:"status"`
	Authenticated bool      `json:"authenticated"`
	LastSync      time.Time `json:"lastSync"`
	LastCount     int       `json:"lastCount"`
}

// syncStatus is written by the polling loop and read by the health handler.
type syncStatus struct {
	mu        sync.RWMutex
	lastSync  time.Time
	lastCount int
}

func (s *syncStatus) record(at time.Time, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSync = at
	s.lastCount = count
}

func (s *syncStatus) snapshot() (time.Time, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync, s.lastCount
}

func newMetricsRouter(app *application, state *syncStatus) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		lastSync, lastCount := state.snapshot()
		response := healthResponse{
			Status:        "ok",
			Authenticated: app.Client.Store.IsAuthenticated(r.Context()),
			LastSync:      lastSync,
			LastCount:     lastCount,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	})
	return router
}

func runWatch(ctx context.Context, app *application, args []string) error {
	flags := &patientQueryFlags{}
	fs := newFlagSet("watch")
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	console := app.Bootstrap.Console
	metricsConfig := app.Bootstrap.InternalConfig.Metrics
	state := &syncStatus{}

	server := &http.Server{
		Addr:              metricsConfig.Address,
		Handler:           newMetricsRouter(app, state),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serverErr := make(chan error, 1)
	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	console.Infof("Serving metrics on %s", metricsConfig.Address)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			console.Warnf("Metrics server forced to shutdown: %v", err)
		}
	}()

	interval := time.Duration(metricsConfig.WatchIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		syncCtx, requestID := utils.EnsureRequestID(ctx)
		var listing *patientListing
		err := utils.LogOperation(app.Bootstrap.Logger, "watch.sync", requestID, func() error {
			var err error
			listing, err = fetchPatients(syncCtx, app, flags)
			return err
		})
		switch {
		case err == nil:
			state.record(app.Now(), len(listing.Filtered))
			console.Infof("Synced %d of %d patients", len(listing.Filtered), listing.Fetched)
		case errors.Is(err, exceptions.ErrAuthentication):
			// the session is gone, polling further cannot succeed
			return err
		case ctx.Err() != nil:
			return nil
		default:
			console.Warnf("Sync failed: %s", exceptions.ClientMessage(err))
		}

		select {
		case <-ctx.Done():
			console.Info("Stopping watch")
			return nil
		case err := <-serverErr:
			return err
		case <-ticker.C:
		}
	}
}

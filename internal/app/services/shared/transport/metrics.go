package transport

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	RefreshOutcomeSucceeded = "succeeded"
	RefreshOutcomeFailed    = "failed"
	RefreshOutcomeExhausted = "exhausted"

	statusLabelError = "error"
)

// RefreshObserver is notified about every refresh-and-retry decision.
type RefreshObserver interface {
	ObserveRefresh(outcome string)
}

type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	refreshTotal    *prometheus.CounterVec
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meditrack",
				Name:      "client_requests_total",
				Help:      "Total number of backend request attempts.",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "meditrack",
				Name:      "client_request_duration_seconds",
				Help:      "Backend request latencies in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		refreshTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meditrack",
				Name:      "client_token_refresh_total",
				Help:      "Token refreshes triggered by rejected requests, by outcome.",
			},
			[]string{"outcome"},
		),
	}
	if registerer != nil {
		registerer.MustRegister(m.requestsTotal, m.requestDuration, m.refreshTotal)
	}
	return m
}

func (m *Metrics) Middleware() Middleware {
	return func(next Sender) Sender {
		return SenderFunc(func(ctx context.Context, request *PendingRequest) (*Response, error) {
			start := time.Now()
			resp, err := next.Send(ctx, request)

			status := statusLabelError
			if err == nil {
				status = strconv.Itoa(resp.StatusCode)
			}
			m.requestDuration.WithLabelValues(request.Method, request.Endpoint).Observe(time.Since(start).Seconds())
			m.requestsTotal.WithLabelValues(request.Method, request.Endpoint, status).Inc()
			return resp, err
		})
	}
}

func (m *Metrics) ObserveRefresh(outcome string) {
	m.refreshTotal.WithLabelValues(outcome).Inc()
}

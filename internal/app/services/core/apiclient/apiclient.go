package apiclient

import (
	"meditrack-client/internal/app/config"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/app/services/core/auth"
	"meditrack-client/internal/app/services/core/patients"
	"meditrack-client/internal/app/services/shared/transport"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client groups the backend clients sharing one credential store.
type Client struct {
	Auth     contracts.AuthClient
	Patients contracts.PatientClient
	Store    contracts.CredentialStore
}

type Options struct {
	BaseUrl              string
	HTTPClient           *http.Client
	UserAgent            string
	MaxRequestsPerSecond float64
	SingleFlightRefresh  bool
	Metrics              *transport.Metrics
	Publisher            contracts.SessionEventPublisher
}

func OptionsFromConfig(internalConfig *config.InternalConfig) Options {
	httpClient := &http.Client{}
	if internalConfig.API.TimeoutInSeconds > 0 {
		httpClient.Timeout = time.Duration(internalConfig.API.TimeoutInSeconds) * time.Second
	}
	return Options{
		BaseUrl:              internalConfig.API.BaseUrl,
		HTTPClient:           httpClient,
		UserAgent:            internalConfig.API.UserAgent,
		MaxRequestsPerSecond: internalConfig.API.MaxRequestsPerSecond,
		SingleFlightRefresh:  internalConfig.API.SingleFlightRefresh,
	}
}

// New wires the auth endpoints through a plain chain and every other endpoint
// through an authorized chain that refreshes once on 401.
func New(options Options, store contracts.CredentialStore, logger *zap.Logger) *Client {
	base := transport.NewHTTPSender(options.HTTPClient, logger)
	limiter := transport.NewLimiter(options.MaxRequestsPerSecond)

	inner := []transport.Middleware{transport.Logging(logger)}
	if options.Metrics != nil {
		inner = append(inner, options.Metrics.Middleware())
	}
	inner = append(inner, transport.RateLimit(limiter))

	plain := transport.Chain(base, append([]transport.Middleware{
		transport.RequestID(),
		transport.UserAgent(options.UserAgent),
	}, inner...)...)
	authClient := auth.NewAuthClient(options.BaseUrl, plain, store, options.Publisher, logger)

	refreshOptions := []transport.RefreshOption{}
	if options.SingleFlightRefresh {
		refreshOptions = append(refreshOptions, transport.WithSingleFlight())
	}
	if options.Metrics != nil {
		refreshOptions = append(refreshOptions, transport.WithRefreshObserver(options.Metrics))
	}
	authorized := transport.Chain(base, append([]transport.Middleware{
		transport.RequestID(),
		transport.UserAgent(options.UserAgent),
		transport.Authorize(store),
		transport.RefreshOnUnauthorized(authClient, logger, refreshOptions...),
	}, inner...)...)

	return &Client{
		Auth:     authClient,
		Patients: patients.NewPatientClient(options.BaseUrl, authorized, store, logger),
		Store:    store,
	}
}

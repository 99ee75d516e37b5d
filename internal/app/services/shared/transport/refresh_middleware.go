package transport

import (
	"context"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const refreshFlightKey = "refresh"

type refreshOnUnauthorized struct {
	Refresher contracts.TokenRefresher
	Log       *zap.Logger
	Observer  RefreshObserver
	flight    *singleflight.Group
}

type RefreshOption func(*refreshOnUnauthorized)

// WithSingleFlight collapses refreshes triggered by concurrent rejected calls
// into one request to the backend.
func WithSingleFlight() RefreshOption {
	return func(r *refreshOnUnauthorized) {
		r.flight = &singleflight.Group{}
	}
}

func WithRefreshObserver(observer RefreshObserver) RefreshOption {
	return func(r *refreshOnUnauthorized) {
		if observer != nil {
			r.Observer = observer
		}
	}
}

// RefreshOnUnauthorized resends a request rejected with 401 once, after
// refreshing the token pair. A second 401 is handed back unchanged and a
// failed refresh surfaces the refresh error instead of the 401.
func RefreshOnUnauthorized(refresher contracts.TokenRefresher, logger *zap.Logger, opts ...RefreshOption) Middleware {
	r := &refreshOnUnauthorized{
		Refresher: refresher,
		Log:       logger,
		Observer:  nopRefreshObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}

	return func(next Sender) Sender {
		return SenderFunc(func(ctx context.Context, request *PendingRequest) (*Response, error) {
			resp, err := next.Send(ctx, request)
			if err != nil {
				return nil, err
			}
			if resp.StatusCode != constvars.StatusUnauthorized {
				return resp, nil
			}

			requestID := utils.RequestIDFromContext(ctx)
			if request.Retried {
				r.Observer.ObserveRefresh(RefreshOutcomeExhausted)
				r.Log.Warn("refreshOnUnauthorized rejected again after refresh",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingURLKey, request.Endpoint),
				)
				return resp, nil
			}
			request.Retried = true

			r.Log.Info("refreshOnUnauthorized refreshing token pair",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingURLKey, request.Endpoint),
			)
			tokens, err := r.refresh(ctx)
			if err != nil {
				r.Observer.ObserveRefresh(RefreshOutcomeFailed)
				r.Log.Error("refreshOnUnauthorized refresh failed",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingURLKey, request.Endpoint),
					zap.Error(err),
				)
				return nil, err
			}
			r.Observer.ObserveRefresh(RefreshOutcomeSucceeded)

			request.Header.Set(constvars.HeaderAuthorization, utils.BearerToken(tokens.Access.Token))
			return next.Send(ctx, request)
		})
	}
}

func (r *refreshOnUnauthorized) refresh(ctx context.Context) (*models.Tokens, error) {
	if r.flight == nil {
		return r.Refresher.RefreshToken(ctx)
	}
	// the shared refresh outlives any single caller; a cancelled caller
	// stops waiting without failing the others
	results := r.flight.DoChan(refreshFlightKey, func() (interface{}, error) {
		return r.Refresher.RefreshToken(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*models.Tokens), nil
	}
}

type nopRefreshObserver struct{}

func (nopRefreshObserver) ObserveRefresh(string) {}

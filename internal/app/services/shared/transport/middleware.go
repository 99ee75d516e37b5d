package transport

import (
	"context"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"
	"meditrack-client/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RequestID tags every attempt with the request id carried by ctx, generating
// one when ctx has none.
func RequestID() Middleware {
	return func(next Sender) Sender {
		return SenderFunc(func(ctx context.Context, request *PendingRequest) (*Response, error) {
			ctx, requestID := utils.EnsureRequestID(ctx)
			request.Header.Set(constvars.HeaderRequestID, requestID)
			return next.Send(ctx, request)
		})
	}
}

func UserAgent(userAgent string) Middleware {
	if userAgent == "" {
		userAgent = constvars.DefaultUserAgent
	}
	return func(next Sender) Sender {
		return SenderFunc(func(ctx context.Context, request *PendingRequest) (*Response, error) {
			request.Header.Set(constvars.HeaderUserAgent, userAgent)
			return next.Send(ctx, request)
		})
	}
}

// Authorize attaches the stored access token. Without one the call fails with
// an authentication error and nothing is sent.
func Authorize(store contracts.CredentialStore) Middleware {
	return func(next Sender) Sender {
		return SenderFunc(func(ctx context.Context, request *PendingRequest) (*Response, error) {
			token, found := store.GetToken(ctx)
			if !found || token == "" {
				return nil, exceptions.ErrTokenMissing()
			}
			request.Header.Set(constvars.HeaderAuthorization, utils.BearerToken(token))
			return next.Send(ctx, request)
		})
	}
}

// RateLimit throttles outbound attempts. A nil limiter disables it.
func RateLimit(limiter *rate.Limiter) Middleware {
	return func(next Sender) Sender {
		if limiter == nil {
			return next
		}
		return SenderFunc(func(ctx context.Context, request *PendingRequest) (*Response, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, exceptions.ErrRateLimiterWait(err)
			}
			return next.Send(ctx, request)
		})
	}
}

// NewLimiter returns nil when maxRequestsPerSecond is not positive.
func NewLimiter(maxRequestsPerSecond float64) *rate.Limiter {
	if maxRequestsPerSecond <= 0 {
		return nil
	}
	burst := int(maxRequestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(maxRequestsPerSecond), burst)
}

func Logging(logger *zap.Logger) Middleware {
	return func(next Sender) Sender {
		return SenderFunc(func(ctx context.Context, request *PendingRequest) (*Response, error) {
			requestID := utils.RequestIDFromContext(ctx)
			start := time.Now()

			resp, err := next.Send(ctx, request)
			if err != nil {
				logger.Warn("transport.Send failed",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingMethodKey, request.Method),
					zap.String(constvars.LoggingURLKey, request.Endpoint),
					zap.Bool(constvars.LoggingRetriedKey, request.Retried),
					zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
					zap.Error(err),
				)
				return nil, err
			}

			logger.Debug("transport.Send completed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, request.Method),
				zap.String(constvars.LoggingURLKey, request.Endpoint),
				zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
				zap.Int(constvars.LoggingResponseLengthKey, len(resp.Body)),
				zap.Bool(constvars.LoggingRetriedKey, request.Retried),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			)
			return resp, nil
		})
	}
}

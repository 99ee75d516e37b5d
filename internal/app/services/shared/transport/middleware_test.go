package transport

import (
	"context"
	"meditrack-client/internal/app/services/shared/credentials"
	"meditrack-client/internal/app/services/shared/keyvalue"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"
	"meditrack-client/internal/pkg/utils"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSender struct {
	requests []*PendingRequest
	contexts []context.Context
	status   int
}

func (s *recordingSender) Send(ctx context.Context, request *PendingRequest) (*Response, error) {
	s.requests = append(s.requests, request)
	s.contexts = append(s.contexts, ctx)
	status := s.status
	if status == 0 {
		status = constvars.StatusOK
	}
	return &Response{StatusCode: status}, nil
}

func TestChain(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next Sender) Sender {
			return SenderFunc(func(ctx context.Context, request *PendingRequest) (*Response, error) {
				order = append(order, name)
				return next.Send(ctx, request)
			})
		}
	}

	sender := Chain(&recordingSender{}, mark("outer"), mark("inner"))
	_, err := sender.Send(context.Background(), NewPendingRequest(constvars.MethodGet, "http://backend", "/x", nil, nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestNewPendingRequest(t *testing.T) {
	t.Run("Query parameters are encoded", func(t *testing.T) {
		request := NewPendingRequest(constvars.MethodGet, "http://backend/v1/", constvars.EndpointPatients,
			map[string]string{"name": "Ann Lee", "page": "2"}, nil)

		assert.Equal(t, "http://backend/v1/patients?name=Ann+Lee&page=2", request.URL)
		assert.Empty(t, request.Header.Get(constvars.HeaderContentType))
		assert.False(t, request.Retried)
	})

	t.Run("Body sets the content type", func(t *testing.T) {
		request := NewPendingRequest(constvars.MethodPost, "http://backend/v1", constvars.EndpointAuthLogin, nil, []byte(`{}`))

		assert.Equal(t, "http://backend/v1/auth/login", request.URL)
		assert.Equal(t, constvars.MIMEApplicationJSON, request.Header.Get(constvars.HeaderContentType))
	})
}

func TestRequestID(t *testing.T) {
	t.Run("Generates an id when the context has none", func(t *testing.T) {
		recorder := &recordingSender{}
		_, err := Chain(recorder, RequestID()).Send(context.Background(), NewPendingRequest(constvars.MethodGet, "http://backend", "/x", nil, nil))
		require.NoError(t, err)

		requestID := recorder.requests[0].Header.Get(constvars.HeaderRequestID)
		assert.NotEmpty(t, requestID)
		assert.Equal(t, requestID, utils.RequestIDFromContext(recorder.contexts[0]))
	})

	t.Run("Keeps the id carried by the context", func(t *testing.T) {
		recorder := &recordingSender{}
		ctx := utils.ContextWithRequestID(context.Background(), "req-1")
		_, err := Chain(recorder, RequestID()).Send(ctx, NewPendingRequest(constvars.MethodGet, "http://backend", "/x", nil, nil))
		require.NoError(t, err)

		assert.Equal(t, "req-1", recorder.requests[0].Header.Get(constvars.HeaderRequestID))
	})
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing token fails without sending", func(t *testing.T) {
		store := credentials.NewCredentialStore(keyvalue.NewMemoryStorage(), zap.NewNop())
		recorder := &recordingSender{}

		_, err := Chain(recorder, Authorize(store)).Send(ctx, NewPendingRequest(constvars.MethodGet, "http://backend", "/x", nil, nil))
		assert.ErrorIs(t, err, exceptions.ErrAuthentication)
		assert.Empty(t, recorder.requests)
	})

	t.Run("Empty stored token fails without sending", func(t *testing.T) {
		store := credentials.NewCredentialStore(keyvalue.NewMemoryStorage(), zap.NewNop())
		require.NoError(t, store.SetTokens(ctx, "", "R1"))
		recorder := &recordingSender{}

		_, err := Chain(recorder, Authorize(store)).Send(ctx, NewPendingRequest(constvars.MethodGet, "http://backend", "/x", nil, nil))
		assert.ErrorIs(t, err, exceptions.ErrAuthentication)
		assert.Empty(t, recorder.requests)
	})

	t.Run("Stored token becomes a bearer header", func(t *testing.T) {
		store := credentials.NewCredentialStore(keyvalue.NewMemoryStorage(), zap.NewNop())
		require.NoError(t, store.SetTokens(ctx, "T1", "R1"))
		recorder := &recordingSender{}

		_, err := Chain(recorder, Authorize(store)).Send(ctx, NewPendingRequest(constvars.MethodGet, "http://backend", "/x", nil, nil))
		require.NoError(t, err)
		assert.Equal(t, "Bearer T1", recorder.requests[0].Header.Get(constvars.HeaderAuthorization))
	})
}

func TestUserAgent(t *testing.T) {
	recorder := &recordingSender{}
	_, err := Chain(recorder, UserAgent("")).Send(context.Background(), NewPendingRequest(constvars.MethodGet, "http://backend", "/x", nil, nil))
	require.NoError(t, err)
	assert.Equal(t, constvars.DefaultUserAgent, recorder.requests[0].Header.Get(constvars.HeaderUserAgent))
}

func TestRateLimit(t *testing.T) {
	t.Run("Disabled limiter passes through", func(t *testing.T) {
		assert.Nil(t, NewLimiter(0))
		recorder := &recordingSender{}
		_, err := Chain(recorder, RateLimit(nil)).Send(context.Background(), NewPendingRequest(constvars.MethodGet, "http://backend", "/x", nil, nil))
		require.NoError(t, err)
		assert.Len(t, recorder.requests, 1)
	})

	t.Run("Cancelled context aborts the wait", func(t *testing.T) {
		limiter := NewLimiter(0.001)
		require.True(t, limiter.Allow())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		recorder := &recordingSender{}
		_, err := Chain(recorder, RateLimit(limiter)).Send(ctx, NewPendingRequest(constvars.MethodGet, "http://backend", "/x", nil, nil))
		assert.ErrorIs(t, err, exceptions.ErrNetwork)
		assert.Empty(t, recorder.requests)
	})
}

func TestMetrics(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	recorder := &recordingSender{status: constvars.StatusUnauthorized}

	sender := Chain(recorder, metrics.Middleware())
	_, err := sender.Send(context.Background(), NewPendingRequest(constvars.MethodGet, "http://backend", constvars.EndpointPatients, nil, nil))
	require.NoError(t, err)

	counter := metrics.requestsTotal.WithLabelValues(constvars.MethodGet, constvars.EndpointPatients, "401")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))
}

package transport

import (
	"context"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/utils"
	"net/http"
	"net/url"
)

// PendingRequest is one logical backend call. It is resent at most once, and
// Retried records whether that already happened.
type PendingRequest struct {
	Method   string
	URL      string
	Endpoint string
	Header   http.Header
	Body     []byte
	Retried  bool
}

// Response is the raw backend answer. A non-2xx status is not an error at this
// level; callers classify it with ErrFromResponse.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type Sender interface {
	Send(ctx context.Context, request *PendingRequest) (*Response, error)
}

type SenderFunc func(ctx context.Context, request *PendingRequest) (*Response, error)

func (f SenderFunc) Send(ctx context.Context, request *PendingRequest) (*Response, error) {
	return f(ctx, request)
}

type Middleware func(next Sender) Sender

// Chain wraps sender with middlewares. The first middleware is the outermost.
func Chain(sender Sender, middlewares ...Middleware) Sender {
	for i := len(middlewares) - 1; i >= 0; i-- {
		sender = middlewares[i](sender)
	}
	return sender
}

func NewPendingRequest(method, baseUrl, endpoint string, query map[string]string, body []byte) *PendingRequest {
	requestURL := utils.JoinURL(baseUrl, endpoint)
	if len(query) > 0 {
		values := url.Values{}
		for key, value := range query {
			values.Set(key, value)
		}
		requestURL += "?" + values.Encode()
	}

	header := http.Header{}
	header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if len(body) > 0 {
		header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	return &PendingRequest{
		Method:   method,
		URL:      requestURL,
		Endpoint: endpoint,
		Header:   header,
		Body:     body,
	}
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= constvars.StatusOK && r.StatusCode < 300
}

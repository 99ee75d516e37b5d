package transport

import (
	"bytes"
	"context"
	"io"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"
	"meditrack-client/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type httpSender struct {
	Client *http.Client
	Log    *zap.Logger
}

func NewHTTPSender(client *http.Client, logger *zap.Logger) Sender {
	if client == nil {
		client = &http.Client{}
	}
	return &httpSender{
		Client: client,
		Log:    logger,
	}
}

func (s *httpSender) Send(ctx context.Context, request *PendingRequest) (*Response, error) {
	requestID := utils.RequestIDFromContext(ctx)

	var body io.Reader
	if len(request.Body) > 0 {
		body = bytes.NewReader(request.Body)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, request.URL, body)
	if err != nil {
		s.Log.Error("httpSender.Send error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, request.Endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header = request.Header.Clone()

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.Error("httpSender.Send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, request.Endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		s.Log.Error("httpSender.Send error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, request.Endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadHTTPResponse(err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       bodyBytes,
	}, nil
}

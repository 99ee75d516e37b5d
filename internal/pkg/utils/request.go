package utils

import (
	"context"
	"meditrack-client/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

// ContextWithRequestID stores requestID in ctx. A new id is generated when
// requestID is empty.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}

// EnsureRequestID returns ctx unchanged when it already carries a request id.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok && requestID != "" {
		return ctx, requestID
	}
	requestID := uuid.NewString()
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID), requestID
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// MergeQueryParams merges filter and options into one parameter set. Values
// from options win on key collision.
func MergeQueryParams(filter, options map[string]string) map[string]string {
	merged := make(map[string]string, len(filter)+len(options))
	for key, value := range filter {
		merged[key] = value
	}
	for key, value := range options {
		merged[key] = value
	}
	return merged
}

func BearerToken(token string) string {
	return constvars.AuthorizationBearerPrefix + token
}

func JoinURL(baseUrl, path string) string {
	return strings.TrimRight(baseUrl, "/") + "/" + strings.TrimLeft(path, "/")
}

package transport

import (
	"meditrack-client/internal/pkg/dto/responses"
	"meditrack-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// ErrFromResponse returns nil for a 2xx response and a classified
// *exceptions.CustomError otherwise. The backend {code, message} body, when
// present, becomes the client message.
func ErrFromResponse(resp *Response, endpoint string) error {
	if resp.IsSuccess() {
		return nil
	}

	var backendError responses.BackendError
	_ = json.Unmarshal(resp.Body, &backendError)

	customErr := exceptions.ErrFromStatus(resp.StatusCode, backendError.Message, endpoint)
	if customErr == nil {
		// 1xx and 3xx are not valid answers from the backend
		return exceptions.ErrServerFailed(resp.StatusCode, backendError.Message, endpoint)
	}
	return customErr
}

// DecodeResponse classifies resp and decodes a successful body into out.
func DecodeResponse(resp *Response, endpoint, resource string, out any) error {
	if err := ErrFromResponse(resp, endpoint); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(resp.Body) == 0 {
		return exceptions.ErrMalformedResponse(resource, "empty body")
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}
	return nil
}

package transport

import (
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrFromResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		kind       error
	}{
		{name: "Unauthorized is an authentication error", statusCode: constvars.StatusUnauthorized, kind: exceptions.ErrAuthentication},
		{name: "Bad request is a validation error", statusCode: constvars.StatusBadRequest, kind: exceptions.ErrValidation},
		{name: "Forbidden is a validation error", statusCode: constvars.StatusForbidden, kind: exceptions.ErrValidation},
		{name: "Internal error is a server error", statusCode: constvars.StatusInternalServerError, kind: exceptions.ErrServer},
		{name: "Unavailable is a server error", statusCode: constvars.StatusServiceUnavailable, kind: exceptions.ErrServer},
		{name: "Redirect is a server error", statusCode: 302, kind: exceptions.ErrServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ErrFromResponse(&Response{StatusCode: tc.statusCode}, constvars.EndpointPatients)
			assert.ErrorIs(t, err, tc.kind)
		})
	}

	t.Run("Success is not an error", func(t *testing.T) {
		assert.NoError(t, ErrFromResponse(&Response{StatusCode: constvars.StatusOK}, constvars.EndpointPatients))
	})

	t.Run("Backend message becomes the client message", func(t *testing.T) {
		resp := &Response{StatusCode: constvars.StatusBadRequest, Body: []byte(`{"code":400,"message":"Email already taken"}`)}
		err := ErrFromResponse(resp, constvars.EndpointAuthRegister)
		assert.Equal(t, "Email already taken", exceptions.ClientMessage(err))
	})
}

func TestDecodeResponse(t *testing.T) {
	t.Run("Decodes a successful body", func(t *testing.T) {
		var out struct {
			Name string `json:"name"`
		}
		err := DecodeResponse(&Response{StatusCode: constvars.StatusOK, Body: []byte(`{"name":"x"}`)}, "/x", "thing", &out)
		require.NoError(t, err)
		assert.Equal(t, "x", out.Name)
	})

	t.Run("Undecodable body is a server error", func(t *testing.T) {
		var out map[string]string
		err := DecodeResponse(&Response{StatusCode: constvars.StatusOK, Body: []byte(`<html>`)}, "/x", "thing", &out)
		assert.ErrorIs(t, err, exceptions.ErrServer)
	})

	t.Run("Empty body is a server error", func(t *testing.T) {
		var out map[string]string
		err := DecodeResponse(&Response{StatusCode: constvars.StatusOK}, "/x", "thing", &out)
		assert.ErrorIs(t, err, exceptions.ErrServer)
	})
}

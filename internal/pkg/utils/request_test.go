package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeQueryParams(t *testing.T) {
	t.Run("Options win on key collision", func(t *testing.T) {
		merged := MergeQueryParams(
			map[string]string{"page": "1", "gender": "female"},
			map[string]string{"page": "2", "limit": "10"},
		)
		assert.Equal(t, map[string]string{"page": "2", "gender": "female", "limit": "10"}, merged)
	})

	t.Run("Nil inputs give an empty set", func(t *testing.T) {
		assert.Empty(t, MergeQueryParams(nil, nil))
	})

	t.Run("Inputs are not modified", func(t *testing.T) {
		filter := map[string]string{"page": "1"}
		_ = MergeQueryParams(filter, map[string]string{"page": "2"})
		assert.Equal(t, "1", filter["page"])
	})
}

func TestEnsureRequestID(t *testing.T) {
	t.Run("Generates an id once", func(t *testing.T) {
		ctx, requestID := EnsureRequestID(context.Background())
		assert.NotEmpty(t, requestID)

		_, again := EnsureRequestID(ctx)
		assert.Equal(t, requestID, again)
		assert.Equal(t, requestID, RequestIDFromContext(ctx))
	})

	t.Run("Empty context has no id", func(t *testing.T) {
		assert.Empty(t, RequestIDFromContext(context.Background()))
	})
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "http://backend/v1/patients", JoinURL("http://backend/v1/", "/patients"))
	assert.Equal(t, "http://backend/v1/patients", JoinURL("http://backend/v1", "patients"))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "Bearer T1", BearerToken("T1"))
}

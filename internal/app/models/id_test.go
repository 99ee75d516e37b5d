package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected ID
	}{
		{name: "String id", input: `"u-1"`, expected: "u-1"},
		{name: "Integer id", input: `42`, expected: "42"},
		{name: "Large integer id keeps its digits", input: `9007199254740993`, expected: "9007199254740993"},
		{name: "Null id", input: `null`, expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tc.input), &id))
			assert.Equal(t, tc.expected, id)
		})
	}

	t.Run("Object id is rejected", func(t *testing.T) {
		var id ID
		assert.Error(t, json.Unmarshal([]byte(`{"value":1}`), &id))
	})
}

func TestUser_NumericIDIsWrittenAsString(t *testing.T) {
	var user User
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"email":"a@b.com","role":"staff"}`), &user))

	data, err := json.Marshal(&user)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"7"`)
}

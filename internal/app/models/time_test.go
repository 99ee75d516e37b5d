package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "Calendar date", input: `"1980-04-21"`, expected: time.Date(1980, time.April, 21, 0, 0, 0, 0, time.UTC)},
		{name: "RFC 3339 timestamp", input: `"2025-04-21T09:00:00Z"`, expected: time.Date(2025, time.April, 21, 9, 0, 0, 0, time.UTC)},
		{name: "Null", input: `null`},
		{name: "Empty string", input: `""`},
		{name: "Unknown layout", input: `"04/21/1980"`},
		{name: "Number", input: `19800421`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var date Date
			require.NoError(t, json.Unmarshal([]byte(tc.input), &date))
			assert.True(t, tc.expected.Equal(date.Time), "got %s", date.Time)
		})
	}
}

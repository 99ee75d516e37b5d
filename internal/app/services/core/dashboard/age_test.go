package dashboard

import (
	"meditrack-client/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		dateOfBirth time.Time
		expected    int
	}{
		{name: "Birthday already passed this year", dateOfBirth: time.Date(1980, 2, 1, 0, 0, 0, 0, time.UTC), expected: 45},
		{name: "Birthday is today", dateOfBirth: time.Date(2007, 6, 15, 0, 0, 0, 0, time.UTC), expected: 18},
		{name: "Birthday later this month", dateOfBirth: time.Date(2007, 6, 16, 0, 0, 0, 0, time.UTC), expected: 17},
		{name: "Birthday in a later month", dateOfBirth: time.Date(1960, 12, 1, 0, 0, 0, 0, time.UTC), expected: 64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CalculateAge(tc.dateOfBirth, now))
		})
	}
}

func TestAgeRange(t *testing.T) {
	t.Run("Bounds are inclusive as labelled", func(t *testing.T) {
		assert.True(t, AgeRangeUnder18.Contains(17))
		assert.False(t, AgeRangeUnder18.Contains(18))
		assert.True(t, AgeRange18To40.Contains(18))
		assert.True(t, AgeRange18To40.Contains(40))
		assert.False(t, AgeRange18To40.Contains(41))
		assert.True(t, AgeRange41To65.Contains(41))
		assert.True(t, AgeRange41To65.Contains(65))
		assert.False(t, AgeRangeOver65.Contains(65))
		assert.True(t, AgeRangeOver65.Contains(66))
		assert.True(t, AgeRangeAny.Contains(0))
	})

	t.Run("Parse accepts known ranges", func(t *testing.T) {
		ageRange, err := ParseAgeRange(" 18TO40 ")
		require.NoError(t, err)
		assert.Equal(t, AgeRange18To40, ageRange)

		ageRange, err = ParseAgeRange("")
		require.NoError(t, err)
		assert.Equal(t, AgeRangeAny, ageRange)
	})

	t.Run("Parse rejects unknown ranges", func(t *testing.T) {
		_, err := ParseAgeRange("teen")
		assert.ErrorIs(t, err, exceptions.ErrValidation)
	})
}

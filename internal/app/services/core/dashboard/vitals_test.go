package dashboard

import (
	"math/rand/v2"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVitals(t *testing.T) {
	now := time.Date(2025, 3, 2, 15, 0, 0, 0, time.UTC)

	t.Run("One reading per day ending today", func(t *testing.T) {
		vitals := GenerateVitals(3, now, rand.New(rand.NewPCG(1, 2)))

		require.Len(t, vitals, 3)
		assert.Equal(t, "2025-02-28", vitals[0].Date)
		assert.Equal(t, "2025-03-01", vitals[1].Date)
		assert.Equal(t, "2025-03-02", vitals[2].Date)
	})

	t.Run("Readings stay within their ranges", func(t *testing.T) {
		vitals := GenerateVitals(500, now, rand.New(rand.NewPCG(7, 7)))

		temperatures := map[float64]bool{}
		for _, vital := range vitals {
			temperatures[vital.Temperature] = true
			assert.GreaterOrEqual(t, vital.HeartRate, 60)
			assert.LessOrEqual(t, vital.HeartRate, 89)
			assert.GreaterOrEqual(t, vital.BloodPressureSystolic, 110)
			assert.LessOrEqual(t, vital.BloodPressureSystolic, 139)
			assert.GreaterOrEqual(t, vital.BloodPressureDiastolic, 70)
			assert.LessOrEqual(t, vital.BloodPressureDiastolic, 89)
			assert.GreaterOrEqual(t, vital.Temperature, 36.5)
			assert.LessOrEqual(t, vital.Temperature, 37.5)
		}
		assert.True(t, temperatures[36.5], "lowest temperature is reachable")
		assert.True(t, temperatures[37.5], "highest temperature is reachable")
	})

	t.Run("Same seed gives the same series", func(t *testing.T) {
		first := GenerateVitals(10, now, rand.New(rand.NewPCG(3, 4)))
		second := GenerateVitals(10, now, rand.New(rand.NewPCG(3, 4)))
		assert.Equal(t, first, second)
	})

	t.Run("Non-positive days fall back to the default window", func(t *testing.T) {
		vitals := GenerateVitals(0, now, rand.New(rand.NewPCG(1, 1)))
		assert.Len(t, vitals, constvars.DefaultVitalDays)
	})
}

func TestSeriesValues(t *testing.T) {
	vitals := []models.VitalSign{
		{HeartRate: 70, Temperature: 36.6},
		{HeartRate: 72, Temperature: 36.9},
	}

	t.Run("Known series", func(t *testing.T) {
		series, err := ParseVitalSeries("heartrate")
		require.NoError(t, err)

		values, err := SeriesValues(vitals, series)
		require.NoError(t, err)
		assert.Equal(t, []float64{70, 72}, values)
	})

	t.Run("Unknown series", func(t *testing.T) {
		_, err := ParseVitalSeries("pulse")
		assert.ErrorIs(t, err, exceptions.ErrValidation)

		_, err = SeriesValues(vitals, models.VitalSeries("pulse"))
		assert.ErrorIs(t, err, exceptions.ErrValidation)
	})
}

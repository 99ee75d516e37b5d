package dashboard

import (
	"math/rand/v2"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"
	"strings"
	"time"
)

const vitalDateLayout = "2006-01-02"

// GenerateVitals synthesizes one reading per day for the days ending with
// now, oldest first. days below one falls back to the default window.
func GenerateVitals(days int, now time.Time, rng *rand.Rand) []models.VitalSign {
	if days <= 0 {
		days = constvars.DefaultVitalDays
	}

	vitals := make([]models.VitalSign, 0, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - i - 1))
		vitals = append(vitals, models.VitalSign{
			Date:                   date.Format(vitalDateLayout),
			HeartRate:              60 + rng.IntN(30),
			BloodPressureSystolic:  110 + rng.IntN(30),
			BloodPressureDiastolic: 70 + rng.IntN(20),
			Temperature:            float64(365+rng.IntN(11)) / 10,
		})
	}
	return vitals
}

func ParseVitalSeries(value string) (models.VitalSeries, error) {
	for _, series := range []models.VitalSeries{
		models.VitalHeartRate,
		models.VitalBloodPressureSystolic,
		models.VitalBloodPressureDiastolic,
		models.VitalTemperature,
	} {
		if strings.EqualFold(string(series), strings.TrimSpace(value)) {
			return series, nil
		}
	}
	return "", exceptions.ErrInvalidVitalSeries(value)
}

func SeriesValues(vitals []models.VitalSign, series models.VitalSeries) ([]float64, error) {
	if _, ok := (models.VitalSign{}).Value(series); !ok {
		return nil, exceptions.ErrInvalidVitalSeries(string(series))
	}

	values := make([]float64, 0, len(vitals))
	for _, vital := range vitals {
		value, _ := vital.Value(series)
		values = append(values, value)
	}
	return values, nil
}

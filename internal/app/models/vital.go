package models

type VitalSeries string

const (
	VitalHeartRate              VitalSeries = "heartRate"
	VitalBloodPressureSystolic  VitalSeries = "bloodPressureSystolic"
	VitalBloodPressureDiastolic VitalSeries = "bloodPressureDiastolic"
	VitalTemperature            VitalSeries = "temperature"
)

type VitalSign struct {
	Date                   string  `json:"date"`
	HeartRate              int     `json:"heartRate"`
	BloodPressureSystolic  int     `json:"bloodPressureSystolic"`
	BloodPressureDiastolic int     `json:"bloodPressureDiastolic"`
	Temperature            float64 `json:"temperature"`
}

// Value returns the reading of the given series.
func (v VitalSign) Value(series VitalSeries) (float64, bool) {
	switch series {
	case VitalHeartRate:
		return float64(v.HeartRate), true
	case VitalBloodPressureSystolic:
		return float64(v.BloodPressureSystolic), true
	case VitalBloodPressureDiastolic:
		return float64(v.BloodPressureDiastolic), true
	case VitalTemperature:
		return v.Temperature, true
	}
	return 0, false
}

package dashboard

import (
	"meditrack-client/internal/pkg/exceptions"
	"strings"
	"time"
)

type AgeRange string

const (
	AgeRangeAny     AgeRange = ""
	AgeRangeUnder18 AgeRange = "under18"
	AgeRange18To40  AgeRange = "18to40"
	AgeRange41To65  AgeRange = "41to65"
	AgeRangeOver65  AgeRange = "over65"
)

func ParseAgeRange(value string) (AgeRange, error) {
	ageRange := AgeRange(strings.ToLower(strings.TrimSpace(value)))
	switch ageRange {
	case AgeRangeAny, AgeRangeUnder18, AgeRange18To40, AgeRange41To65, AgeRangeOver65:
		return ageRange, nil
	}
	return AgeRangeAny, exceptions.ErrInvalidAgeRange(value)
}

func (r AgeRange) Contains(age int) bool {
	switch r {
	case AgeRangeUnder18:
		return age < 18
	case AgeRange18To40:
		return age >= 18 && age <= 40
	case AgeRange41To65:
		return age >= 41 && age <= 65
	case AgeRangeOver65:
		return age > 65
	}
	return true
}

// CalculateAge returns the completed years between dateOfBirth and now. The
// birthday itself counts as completed.
func CalculateAge(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() || (now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}

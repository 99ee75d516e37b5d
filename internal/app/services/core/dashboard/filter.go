package dashboard

import (
	"meditrack-client/internal/app/models"
	"strings"
	"time"
)

// Criteria narrows an already fetched patient list. Zero values match
// everything.
type Criteria struct {
	Search    string
	Gender    models.Gender
	BloodType models.BloodType
	AgeRange  AgeRange
}

func (c Criteria) IsActive() bool {
	return c.Search != "" || c.Gender != "" || c.BloodType != "" || c.AgeRange != AgeRangeAny
}

func (c *Criteria) Reset() {
	*c = Criteria{}
}

// FilterPatients keeps the patients matching every criterion, in their
// original order. The search term is matched case-insensitively against first
// name, last name and medical record number.
func FilterPatients(patients []models.Patient, criteria Criteria, now time.Time) []models.Patient {
	term := strings.ToLower(strings.TrimSpace(criteria.Search))

	results := make([]models.Patient, 0, len(patients))
	for _, patient := range patients {
		if term != "" && !matchesSearch(patient, term) {
			continue
		}
		if criteria.Gender != "" && patient.Gender != criteria.Gender {
			continue
		}
		if criteria.BloodType != "" && patient.BloodType != criteria.BloodType {
			continue
		}
		if criteria.AgeRange != AgeRangeAny {
			if patient.DateOfBirth.IsZero() {
				continue
			}
			if !criteria.AgeRange.Contains(CalculateAge(patient.DateOfBirth.Time, now)) {
				continue
			}
		}
		results = append(results, patient)
	}
	return results
}

func matchesSearch(patient models.Patient, term string) bool {
	return strings.Contains(strings.ToLower(patient.FirstName), term) ||
		strings.Contains(strings.ToLower(patient.LastName), term) ||
		strings.Contains(strings.ToLower(patient.MedicalRecordNumber), term)
}

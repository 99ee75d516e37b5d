package responses

import (
	"bytes"
	"meditrack-client/internal/app/models"

	"github.com/goccy/go-json"
)

// PatientPage is the patient listing together with whatever paging metadata
// the backend returned.
type PatientPage struct {
	Patients     []models.Patient `json:"patients"`
	Page         int              `json:"page,omitempty"`
	Limit        int              `json:"limit,omitempty"`
	TotalPages   int              `json:"totalPages,omitempty"`
	TotalResults int              `json:"totalResults,omitempty"`
}

type patientEnvelope struct {
	Results      []models.Patient `json:"results"`
	Patients     []models.Patient `json:"patients"`
	Page         int              `json:"page"`
	Limit        int              `json:"limit"`
	TotalPages   int              `json:"totalPages"`
	TotalResults int              `json:"totalResults"`
	Total        int              `json:"total"`
}

// UnmarshalJSON accepts a bare array of patients or a paginated envelope
// carrying them under "results" or "patients".
func (p *PatientPage) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var patients []models.Patient
		if err := json.Unmarshal(trimmed, &patients); err != nil {
			return err
		}
		*p = PatientPage{Patients: patients, TotalResults: len(patients)}
		return nil
	}

	var envelope patientEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return err
	}
	patients := envelope.Results
	if patients == nil {
		patients = envelope.Patients
	}
	totalResults := envelope.TotalResults
	if totalResults == 0 {
		totalResults = envelope.Total
	}
	*p = PatientPage{
		Patients:     patients,
		Page:         envelope.Page,
		Limit:        envelope.Limit,
		TotalPages:   envelope.TotalPages,
		TotalResults: totalResults,
	}
	return nil
}

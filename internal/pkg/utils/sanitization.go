package utils

import (
	"meditrack-client/internal/pkg/dto/requests"
	"strings"
)

// Passwords are sent as typed.

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Name = strings.Join(strings.Fields(input.Name), " ")
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

// SanitizePatientFilter trims keys and values and drops entries whose key is
// empty after trimming.
func SanitizePatientFilter(input requests.PatientFilter) requests.PatientFilter {
	sanitized := make(requests.PatientFilter, len(input))
	for key, value := range input {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		sanitized[key] = strings.TrimSpace(value)
	}
	return sanitized
}

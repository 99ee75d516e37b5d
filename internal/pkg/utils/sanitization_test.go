package utils

import (
	"meditrack-client/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email: "  SMITH@CLINIC.TEST  ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "smith@clinic.test", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Name Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email: "smith@clinic.test",
			Name:  "  Dr.   Jane  Smith ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "Dr. Jane Smith", request.Name, "inner whitespace should collapse")
	})

	t.Run("Password Untouched", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "smith@clinic.test",
			Password: " pass word ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, " pass word ", request.Password, "password should be sent as typed")
	})
}

func TestSanitizeLoginUserRequest(t *testing.T) {
	request := &requests.LoginUser{
		Email:    " Nurse@Clinic.Test",
		Password: "secret ",
	}

	SanitizeLoginUserRequest(request)

	assert.Equal(t, "nurse@clinic.test", request.Email)
	assert.Equal(t, "secret ", request.Password)
}

func TestSanitizePatientFilter(t *testing.T) {
	t.Run("Trims Keys And Values", func(t *testing.T) {
		filter := requests.PatientFilter{" gender ": " female "}

		assert.Equal(t, requests.PatientFilter{"gender": "female"}, SanitizePatientFilter(filter))
	})

	t.Run("Drops Empty Keys", func(t *testing.T) {
		filter := requests.PatientFilter{"  ": "x", "ward": "3"}

		assert.Equal(t, requests.PatientFilter{"ward": "3"}, SanitizePatientFilter(filter))
	})

	t.Run("Nil Filter", func(t *testing.T) {
		assert.Empty(t, SanitizePatientFilter(nil))
	})
}

package exceptions

import (
	"fmt"
	"meditrack-client/internal/pkg/constvars"
)

var (
	// Input
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, ErrValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, ErrValidation, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, ErrValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrParseToken = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, ErrValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevParseToken)
	}
	ErrUnsupportedStorageDriver = func(driver string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, ErrValidation, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUnsupportedStorageDriver, driver))
	}
	ErrInvalidAgeRange = func(ageRange string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, ErrValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidAgeRange, ageRange))
	}
	ErrInvalidVitalSeries = func(series string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, ErrValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidVitalSeries, series))
	}

	// Auth
	ErrTokenMissing = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, ErrAuthentication, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrRefreshTokenMissing = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, ErrAuthentication, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthRefreshTokenMissing)
	}
	ErrInvalidCredentials = func(clientMessage, endpoint string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, ErrAuthentication, orDefault(clientMessage, constvars.ErrClientInvalidUsernameOrPassword), fmt.Sprintf(constvars.ErrDevAuthRejected, endpoint))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, ErrValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, 0, ErrNetwork, constvars.ErrClientServerUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadHTTPResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, 0, ErrNetwork, constvars.ErrClientServerUnreachable, constvars.ErrDevReadHTTPResponse)
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return BuildNewCustomError(err, 0, ErrNetwork, constvars.ErrClientServerUnreachable, constvars.ErrDevRateLimiterWait)
	}
	ErrUnauthenticated = func(statusCode int, clientMessage, endpoint string) *CustomError {
		return BuildNewCustomError(nil, statusCode, ErrAuthentication, orDefault(clientMessage, constvars.ErrClientNotLoggedIn), fmt.Sprintf(constvars.ErrDevAuthRejected, endpoint))
	}
	ErrRequestRejected = func(statusCode int, clientMessage, endpoint string) *CustomError {
		return BuildNewCustomError(nil, statusCode, ErrValidation, orDefault(clientMessage, constvars.ErrClientCannotProcessRequest), fmt.Sprintf(constvars.ErrDevRequestRejected, statusCode, endpoint))
	}
	ErrServerFailed = func(statusCode int, clientMessage, endpoint string) *CustomError {
		return BuildNewCustomError(nil, statusCode, ErrServer, orDefault(clientMessage, constvars.ErrClientServerError), fmt.Sprintf(constvars.ErrDevServerFailed, statusCode, endpoint))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, ErrServer, constvars.ErrClientServerError, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrMalformedResponse = func(resource, reason string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, ErrServer, constvars.ErrClientServerError, fmt.Sprintf(constvars.ErrDevMalformedResponse, resource, reason))
	}

	// Storage
	ErrStorageGet = func(err error, key, driver string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ErrStorage, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageGet, key, driver))
	}
	ErrStorageSet = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ErrStorage, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageSet, driver))
	}
	ErrStorageDelete = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ErrStorage, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageDelete, driver))
	}
	ErrStorageSeal = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ErrStorage, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStorageSeal)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ErrStorage, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ErrNetwork, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
)

// ErrFromStatus classifies a non-2xx backend response. It returns nil for
// statuses below 400.
func ErrFromStatus(statusCode int, clientMessage, endpoint string) *CustomError {
	switch {
	case statusCode < constvars.StatusBadRequest:
		return nil
	case statusCode == constvars.StatusUnauthorized:
		return ErrUnauthenticated(statusCode, clientMessage, endpoint)
	case statusCode >= constvars.StatusInternalServerError:
		return ErrServerFailed(statusCode, clientMessage, endpoint)
	default:
		return ErrRequestRejected(statusCode, clientMessage, endpoint)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

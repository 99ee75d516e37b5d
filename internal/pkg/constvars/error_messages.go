package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientServerUnreachable             = "the server cannot be reached, please check your connection"
	ErrClientServerError                   = "the server failed to process your request"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevReadHTTPResponse         = "failed to read HTTP response body"
	ErrDevDecodeResponse           = "failed to decode %s response"
	ErrDevMalformedResponse        = "malformed %s response: %s"
	ErrDevAuthTokenMissing         = "no access token available"
	ErrDevAuthRefreshTokenMissing  = "no refresh token available"
	ErrDevAuthRejected             = "request rejected by server as unauthenticated on %s"
	ErrDevRequestRejected          = "request rejected by server with status %d on %s"
	ErrDevServerFailed             = "server failed with status %d on %s"
	ErrDevRateLimiterWait          = "outbound rate limiter wait aborted"
	ErrDevStorageGet               = "failed to GET %s from %s storage"
	ErrDevStorageSet               = "failed to SET data into %s storage"
	ErrDevStorageDelete            = "failed to DELETE data from %s storage"
	ErrDevStorageSeal              = "failed to seal or open credential file"
	ErrDevMinioCreateObject        = "failed to create object in bucket %s"
	ErrDevRabbitMQPublishMessage   = "failed to publish message to queue %s"
	ErrDevParseToken               = "failed to parse token claims"
	ErrDevUnsupportedStorageDriver = "unsupported credential store driver %s"
	ErrDevInvalidAgeRange          = "unsupported age range %s"
	ErrDevInvalidVitalSeries       = "unsupported vital series %s"
	ErrDevServerProcess            = "server failed to process something related to machine system"
)

package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingURLKey            = "url"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseLengthKey = "response_length"
	LoggingPatientCountKey   = "patient_count"
	LoggingUserIDKey         = "user_id"
	LoggingEmailKey          = "email"
	LoggingStorageKey        = "storage_key"
	LoggingStorageDriverKey  = "storage_driver"
	LoggingRetriedKey        = "retried"
	LoggingEventTypeKey      = "event_type"
	LoggingObjectNameKey     = "object_name"
	LoggingBucketNameKey     = "bucket_name"
	LoggingTokenExpiresAtKey = "token_expires_at"
	LoggingUserStateKey      = "user_state"
	LoggingOperationKey      = "operation"
	LoggingSuccessKey        = "success"
)

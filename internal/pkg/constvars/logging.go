package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingPatientEmailKey = "patient_email"
	LoggingPatientCountKey = "patient_count"
	LoggingSearchKey       = "search_key"
	LoggingFileNameKey     = "file_name"
	LoggingFileSizeKey     = "file_size"
	LoggingRedisKey        = "redis_key"
	LoggingQueueKey        = "queue"
	LoggingEventKey        = "event"
	LoggingEndpointKey     = "endpoint"
	LoggingMethodKey       = "method"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingErrorTypeKey    = "error_type"
	LoggingOperationKey    = "operation"
	LoggingRequestKey      = "request"
	LoggingUpdateFieldsKey = "update_fields"
	LoggingUnsetFieldsKey  = "unset_fields"
	LoggingDeletedCountKey = "deleted_count"
)

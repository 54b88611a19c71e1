package constvars

// CustomValidationErrorMessages maps validator tags to client-facing text.
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"oneof":        "must be one of: %s",
	"phone_number": "must be a valid phone number",
}

// TagsWithParams lists validator tags whose message embeds the tag parameter.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientFileNotFound                  = "file not found"
	ErrClientInvalidImageFormat            = "image must be a jpeg, png, gif or webp file"
	ErrClientImageTooLarge                 = "image exceeds the maximum upload size"
	ErrClientInvalidDoctorReference        = "assignedDoctor must be a valid doctor ID"
	ErrClientRequestBodyTooLarge           = "request body is too large"
	ErrClientServiceUnavailable            = "service temporarily unavailable"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientRouteNotFound                 = "route not found"
	ErrClientMethodNotAllowed              = "method not allowed"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON"
	ErrDevCannotMarshalJSON           = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm    = "cannot parse multipart form"
	ErrDevCannotParseFormValue        = "cannot parse form value %s"
	ErrDevUnknownField                = "unknown field %s"
	ErrDevImageValidationFailed       = "image validation failed"
	ErrDevInvalidDoctorReference      = "assignedDoctor is not a valid object ID"
	ErrDevRequestBodyTooLarge         = "request body exceeds configured limit"
	ErrDevServerDeadlineExceeded      = "deadline exceeded"
	ErrDevServerProcess               = "server failed to process request"
	ErrDevServerPanic                 = "recovered from panic while serving request"
	ErrDevTooManyRequests             = "rate limit exceeded for %s"
	ErrDevRouteNotFound               = "no route registered for %s %s"
	ErrDevEmailAlreadyExists          = "email already exists"
	ErrDevPatientNotExists            = "patient does not exist"
	ErrDevDBFailedToInsertDocument    = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument    = "failed to update document into database"
	ErrDevDBFailedToFindDocument      = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument    = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments  = "failed to iterate documents from database"
	ErrDevDBFailedToAggregate         = "failed to run aggregation on database"
	ErrDevDBFailedToCreateIndex       = "failed to create index on database"
	ErrDevDBFailedToPing              = "failed to ping database"
	ErrDevRedisGetData                = "failed to get data from redis with key %s"
	ErrDevRedisSetData                = "failed to set data into redis"
	ErrDevRedisDeleteData             = "failed to delete data from redis"
	ErrDevMinioFailedToCreateObject   = "failed to create object on minio bucket %s"
	ErrDevMinioFailedToGetObject      = "failed to get object from minio bucket %s"
	ErrDevMinioFailedToCreateBucket   = "failed to create minio bucket %s"
	ErrDevLocalStorageFailedToWrite   = "failed to write file into local storage"
	ErrDevLocalStorageFailedToOpen    = "failed to open file from local storage"
	ErrDevStorageFileNotFound         = "file %s not found in storage"
	ErrDevRabbitMQFailedToPublish     = "failed to publish message into queue %s"
	ErrDevRabbitMQFailedToOpenChannel = "failed to open rabbitmq channel"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HSPTL_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	MongoCollectionPatients = "patients"
	MongoCollectionDoctors  = "doctors"
)

const (
	StorageDriverLocal = "local"
	StorageDriverMinio = "minio"
)

const (
	RedisKeyPatientPrefix = "patient:"
)

const (
	PatientEventCreated = "patient.created"
	PatientEventUpdated = "patient.updated"
	PatientEventDeleted = "patient.deleted"
)

const (
	PatientOperationList   = "list"
	PatientOperationGet    = "get"
	PatientOperationSearch = "search"
	PatientOperationCreate = "create"
	PatientOperationUpdate = "update"
	PatientOperationDelete = "delete"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

const (
	UploadRoutePrefix = "/upload/"
)

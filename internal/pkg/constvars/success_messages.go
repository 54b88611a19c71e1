package constvars

const (
	ResponseUnknown = "unknown"

	GetPatientsSuccessMessage    = "patients retrieved successfully"
	GetPatientSuccessMessage     = "patient retrieved successfully"
	SearchPatientsSuccessMessage = "patients searched successfully"
	CreatePatientSuccessMessage  = "Patient created"
	UpdatePatientSuccessMessage  = "Patient updated successfully"
	DeletePatientSuccessMessage  = "Patient deleted successfully"
	ServerRunningMessage         = "This is the server"
	HealthCheckSuccessMessage    = "ok"
)

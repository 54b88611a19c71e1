package models

import "time"

// PatientEvent is the message published on every patient write.
type PatientEvent struct {
	Event      string    `json:"event"`
	PatientID  string    `json:"patientId"`
	Email      string    `json:"email,omitempty"`
	RequestID  string    `json:"requestId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

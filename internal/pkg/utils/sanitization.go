package utils

import (
	"hospital-records-service/internal/pkg/dto/requests"
	"strings"
)

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimStringPointer(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = sanitizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.Address = strings.TrimSpace(input.Address)
	input.Disease = strings.TrimSpace(input.Disease)
	trimStringPointer(input.AssignedDoctor)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	trimStringPointer(input.Name)
	if input.Email != nil {
		*input.Email = sanitizeEmail(*input.Email)
	}
	trimStringPointer(input.Phone)
	if input.Gender != nil {
		*input.Gender = strings.ToLower(strings.TrimSpace(*input.Gender))
	}
	trimStringPointer(input.Address)
	trimStringPointer(input.Disease)
	trimStringPointer(input.AssignedDoctor)
}

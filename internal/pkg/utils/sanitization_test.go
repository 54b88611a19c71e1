package utils

import (
	"hospital-records-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreatePatientRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.CreatePatient{
			Name:  "Jane Doe",
			Email: "  JANE@EXAMPLE.COM  ",
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "jane@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Text Fields Are Trimmed", func(t *testing.T) {
		request := &requests.CreatePatient{
			Name:    "  Jane Doe ",
			Email:   "jane@example.com",
			Phone:   " +62 811 000 ",
			Address: "  Jl. Sudirman 1  ",
			Disease: "\tflu\n",
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "Jane Doe", request.Name)
		assert.Equal(t, "+62 811 000", request.Phone)
		assert.Equal(t, "Jl. Sudirman 1", request.Address)
		assert.Equal(t, "flu", request.Disease)
	})

	t.Run("Gender Is Lowercased", func(t *testing.T) {
		request := &requests.CreatePatient{Gender: " Female "}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "female", request.Gender, "gender should match the validator's lowercase options")
	})

	t.Run("Assigned Doctor Is Trimmed", func(t *testing.T) {
		doctor := "  64b7f0c2a1b2c3d4e5f60718 "
		request := &requests.CreatePatient{AssignedDoctor: &doctor}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", *request.AssignedDoctor)
	})

	t.Run("Nil Assigned Doctor Stays Nil", func(t *testing.T) {
		request := &requests.CreatePatient{Email: "a@b.co"}

		SanitizeCreatePatientRequest(request)

		assert.Nil(t, request.AssignedDoctor)
	})
}

func TestSanitizeUpdatePatientRequest(t *testing.T) {
	t.Run("Only Supplied Fields Are Touched", func(t *testing.T) {
		email := " NEW@Example.com "
		request := &requests.UpdatePatient{Email: &email}

		SanitizeUpdatePatientRequest(request)

		assert.Equal(t, "new@example.com", *request.Email)
		assert.Nil(t, request.Name)
		assert.Nil(t, request.Gender)
		assert.Nil(t, request.Phone)
	})

	t.Run("Pointer Fields Are Trimmed", func(t *testing.T) {
		name := "  John  "
		gender := "MALE"
		disease := " asthma "
		request := &requests.UpdatePatient{Name: &name, Gender: &gender, Disease: &disease}

		SanitizeUpdatePatientRequest(request)

		assert.Equal(t, "John", *request.Name)
		assert.Equal(t, "male", *request.Gender)
		assert.Equal(t, "asthma", *request.Disease)
	})
}

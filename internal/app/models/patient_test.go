package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPatientChanges_ToUpdateDocument(t *testing.T) {
	updatedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Only Supplied Fields Are Set", func(t *testing.T) {
		name := "Jane"
		age := 40
		changes := PatientChanges{Name: &name, Age: &age}

		update := changes.ToUpdateDocument(updatedAt)

		assert.Equal(t, bson.M{"name": "Jane", "age": 40, "updatedAt": updatedAt}, update["$set"])
		assert.NotContains(t, update, "$unset")
	})

	t.Run("Clearing The Doctor Unsets The Field", func(t *testing.T) {
		changes := PatientChanges{ClearAssignedDoctor: true}

		update := changes.ToUpdateDocument(updatedAt)

		assert.Equal(t, bson.M{"assignedDoctor": ""}, update["$unset"])
		assert.NotContains(t, update["$set"], "assignedDoctor")
	})

	t.Run("Doctor Reference Is Set As ObjectID", func(t *testing.T) {
		doctorID := primitive.NewObjectID()
		changes := PatientChanges{AssignedDoctor: &doctorID}

		update := changes.ToUpdateDocument(updatedAt)

		set, ok := update["$set"].(bson.M)
		require.True(t, ok)
		assert.Equal(t, doctorID, set["assignedDoctor"])
	})

	t.Run("Empty Changes Still Touch UpdatedAt", func(t *testing.T) {
		update := PatientChanges{}.ToUpdateDocument(updatedAt)

		assert.Equal(t, bson.M{"$set": bson.M{"updatedAt": updatedAt}}, update)
	})
}

func TestPatientChanges_FieldNames(t *testing.T) {
	email := "a@b.co"
	setFields, unsetFields := PatientChanges{Email: &email, ClearAssignedDoctor: true}.FieldNames()

	assert.Equal(t, []string{"email"}, setFields)
	assert.Equal(t, []string{"assignedDoctor"}, unsetFields)
}

func TestPatient_ConvertIntoResponse(t *testing.T) {
	doctorID := primitive.NewObjectID()
	patient := Patient{
		ID:             primitive.NewObjectID(),
		Name:           "Jane",
		Email:          "jane@example.com",
		AssignedDoctor: &doctorID,
		Image:          "1700000000000-avatar.png",
	}

	t.Run("Plain Patient Keeps Doctor Id", func(t *testing.T) {
		response := patient.ConvertIntoResponse()

		assert.Equal(t, patient.ID.Hex(), response.ID)
		require.NotNil(t, response.AssignedDoctor)
		assert.Equal(t, doctorID.Hex(), response.AssignedDoctor.ID)
		assert.Empty(t, response.AssignedDoctor.Name)
		assert.Equal(t, "/upload/1700000000000-avatar.png", response.ImageURL)
	})

	t.Run("Joined Doctor Adds Name", func(t *testing.T) {
		response := PatientWithDoctor{
			Patient: patient,
			Doctor:  &DoctorSummary{ID: doctorID, Name: "Dr. House"},
		}.ConvertIntoResponse()

		require.NotNil(t, response.AssignedDoctor)
		assert.Equal(t, "Dr. House", response.AssignedDoctor.Name)
	})

	t.Run("No Doctor No Image", func(t *testing.T) {
		response := Patient{ID: primitive.NewObjectID(), Name: "John"}.ConvertIntoResponse()

		assert.Nil(t, response.AssignedDoctor)
		assert.Empty(t, response.ImageURL)
	})
}

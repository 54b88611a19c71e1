package models

import (
	"hospital-records-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DoctorSummary is the slice of a doctors document joined onto a patient.
type DoctorSummary struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

func (d DoctorSummary) ConvertIntoResponse() *responses.DoctorReference {
	return &responses.DoctorReference{
		ID:   d.ID.Hex(),
		Name: d.Name,
	}
}

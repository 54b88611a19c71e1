package models

import (
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	Name           string              `bson:"name"`
	Email          string              `bson:"email"`
	Phone          string              `bson:"phone,omitempty"`
	Age            *int                `bson:"age,omitempty"`
	Gender         string              `bson:"gender,omitempty"`
	Address        string              `bson:"address,omitempty"`
	Disease        string              `bson:"disease,omitempty"`
	AssignedDoctor *primitive.ObjectID `bson:"assignedDoctor,omitempty"`
	Image          string              `bson:"image,omitempty"`
	TimeModel      `bson:",inline"`
}

// PatientWithDoctor is a patient as returned by the list aggregation, with the
// assigned doctor looked up from the doctors collection.
type PatientWithDoctor struct {
	Patient `bson:",inline"`
	Doctor  *DoctorSummary `bson:"doctor,omitempty"`
}

func (p Patient) ConvertIntoResponse() responses.Patient {
	response := responses.Patient{
		ID:        p.ID.Hex(),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Age:       p.Age,
		Gender:    p.Gender,
		Address:   p.Address,
		Disease:   p.Disease,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.AssignedDoctor != nil {
		response.AssignedDoctor = &responses.DoctorReference{ID: p.AssignedDoctor.Hex()}
	}
	if p.Image != "" {
		response.ImageURL = constvars.UploadRoutePrefix + p.Image
	}
	return response
}

// ConvertIntoResponse keeps the plain reference when the doctor no longer
// exists in the doctors collection.
func (p PatientWithDoctor) ConvertIntoResponse() responses.Patient {
	response := p.Patient.ConvertIntoResponse()
	if p.Doctor != nil {
		response.AssignedDoctor = p.Doctor.ConvertIntoResponse()
	}
	return response
}

// PatientChanges holds the fields of a partial update. Nil fields are left as
// stored. ClearAssignedDoctor removes the doctor reference.
type PatientChanges struct {
	Name                *string
	Email               *string
	Phone               *string
	Age                 *int
	Gender              *string
	Address             *string
	Disease             *string
	AssignedDoctor      *primitive.ObjectID
	ClearAssignedDoctor bool
	Image               *string
}

// ToUpdateDocument builds the $set and $unset stages. updatedAt is always set,
// so an update with no fields still records the write.
func (c PatientChanges) ToUpdateDocument(updatedAt time.Time) bson.M {
	set := bson.M{"updatedAt": updatedAt}
	setIfPresent := func(field string, value *string) {
		if value != nil {
			set[field] = *value
		}
	}

	setIfPresent("name", c.Name)
	setIfPresent("email", c.Email)
	setIfPresent("phone", c.Phone)
	setIfPresent("gender", c.Gender)
	setIfPresent("address", c.Address)
	setIfPresent("disease", c.Disease)
	setIfPresent("image", c.Image)
	if c.Age != nil {
		set["age"] = *c.Age
	}

	update := bson.M{}
	if c.ClearAssignedDoctor {
		update["$unset"] = bson.M{"assignedDoctor": ""}
	} else if c.AssignedDoctor != nil {
		set["assignedDoctor"] = *c.AssignedDoctor
	}
	update["$set"] = set
	return update
}

// FieldNames lists the fields written by $set and removed by $unset, for logging.
func (c PatientChanges) FieldNames() (setFields []string, unsetFields []string) {
	candidates := []struct {
		name    string
		present bool
	}{
		{"name", c.Name != nil},
		{"email", c.Email != nil},
		{"phone", c.Phone != nil},
		{"age", c.Age != nil},
		{"gender", c.Gender != nil},
		{"address", c.Address != nil},
		{"disease", c.Disease != nil},
		{"assignedDoctor", c.AssignedDoctor != nil && !c.ClearAssignedDoctor},
		{"image", c.Image != nil},
	}
	for _, candidate := range candidates {
		if candidate.present {
			setFields = append(setFields, candidate.name)
		}
	}
	if c.ClearAssignedDoctor {
		unsetFields = append(unsetFields, "assignedDoctor")
	}
	return setFields, unsetFields
}

package requests

import (
	"mime/multipart"

	"github.com/goccy/go-json"
)

type CreatePatient struct {
	Name           string       `json:"name" validate:"required,min=1,max=100"`
	Email          string       `json:"email" validate:"required,email"`
	Phone          string       `json:"phone,omitempty" validate:"omitempty,phone_number"`
	Age            *int         `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Gender         string       `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address        string       `json:"address,omitempty" validate:"omitempty,max=255"`
	Disease        string       `json:"disease,omitempty" validate:"omitempty,max=255"`
	AssignedDoctor *string      `json:"assignedDoctor,omitempty"`
	Image          *ImageUpload `json:"-" validate:"-"`
}

// UpdatePatient carries only the fields the client supplied. ID and MongoID
// are accepted so clients echoing a fetched record are not rejected, and are
// never written.
type UpdatePatient struct {
	ID             json.RawMessage `json:"id,omitempty" validate:"-"`
	MongoID        json.RawMessage `json:"_id,omitempty" validate:"-"`
	Name           *string         `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email          *string         `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string         `json:"phone,omitempty" validate:"omitempty,phone_number"`
	Age            *int            `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Gender         *string         `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address        *string         `json:"address,omitempty" validate:"omitempty,max=255"`
	Disease        *string         `json:"disease,omitempty" validate:"omitempty,max=255"`
	AssignedDoctor *string         `json:"assignedDoctor,omitempty"`
	CreatedAt      json.RawMessage `json:"createdAt,omitempty" validate:"-"`
	UpdatedAt      json.RawMessage `json:"updatedAt,omitempty" validate:"-"`
	Image          *ImageUpload    `json:"-" validate:"-"`
}

type ImageUpload struct {
	File   multipart.File
	Header *multipart.FileHeader
}

func (u *ImageUpload) Close() error {
	if u == nil || u.File == nil {
		return nil
	}
	return u.File.Close()
}

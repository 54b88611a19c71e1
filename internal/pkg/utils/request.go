package utils

import (
	"bytes"
	"errors"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/dto/requests"
	"hospital-records-service/internal/pkg/exceptions"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
)

var createPatientFormFields = map[string]bool{
	constvars.FormFieldName:           true,
	constvars.FormFieldEmail:          true,
	constvars.FormFieldPhone:          true,
	constvars.FormFieldAge:            true,
	constvars.FormFieldGender:         true,
	constvars.FormFieldAddress:        true,
	constvars.FormFieldDisease:        true,
	constvars.FormFieldAssignedDoctor: true,
}

var updatePatientFormFields = map[string]bool{
	constvars.FormFieldName:           true,
	constvars.FormFieldEmail:          true,
	constvars.FormFieldPhone:          true,
	constvars.FormFieldAge:            true,
	constvars.FormFieldGender:         true,
	constvars.FormFieldAddress:        true,
	constvars.FormFieldDisease:        true,
	constvars.FormFieldAssignedDoctor: true,
	constvars.FormFieldID:             true,
	constvars.FormFieldMongoID:        true,
	"createdAt":                       true,
	"updatedAt":                       true,
}

func isMultipartRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get(constvars.HeaderContentType))
	return err == nil && mediaType == constvars.MIMEMultipartForm
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, exceptions.ErrRequestBodyTooLarge(err)
		}
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return body, nil
}

// decodeJSONBody rejects fields the target struct does not declare. An empty
// body decodes to the zero value.
func decodeJSONBody(body []byte, target interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// jsonNullFields reports which top-level keys were sent as a literal null.
func jsonNullFields(body []byte) map[string]bool {
	nullFields := make(map[string]bool)
	if len(bytes.TrimSpace(body)) == 0 {
		return nullFields
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nullFields
	}
	for key, value := range raw {
		if string(bytes.TrimSpace(value)) == "null" {
			nullFields[key] = true
		}
	}
	return nullFields
}

func parseMultipartForm(r *http.Request, maxMemory int64, allowedFields map[string]bool) error {
	err := r.ParseMultipartForm(maxMemory)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err)
		}
		return exceptions.ErrCannotParseMultipartForm(err)
	}

	for field := range r.MultipartForm.Value {
		if !allowedFields[field] {
			return exceptions.ErrUnknownField(nil, field)
		}
	}
	for field := range r.MultipartForm.File {
		if field != constvars.FormFieldImage {
			return exceptions.ErrUnknownField(nil, field)
		}
	}
	return nil
}

func formValue(form *multipart.Form, key string) (string, bool) {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func formStringPointer(form *multipart.Form, key string) *string {
	value, ok := formValue(form, key)
	if !ok {
		return nil
	}
	return &value
}

func formIntPointer(form *multipart.Form, key string) (*int, error) {
	value, ok := formValue(form, key)
	if !ok || value == "" {
		return nil, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return nil, exceptions.ErrCannotParseFormValue(err, key)
	}
	return &intValue, nil
}

func formImage(form *multipart.Form) (*requests.ImageUpload, error) {
	fileHeaders, ok := form.File[constvars.FormFieldImage]
	if !ok || len(fileHeaders) == 0 {
		return nil, nil
	}
	fileHeader := fileHeaders[0]
	file, err := fileHeader.Open()
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	return &requests.ImageUpload{File: file, Header: fileHeader}, nil
}

// BuildCreatePatientRequest reads either a JSON body or a multipart form with
// an optional image part.
func BuildCreatePatientRequest(r *http.Request, maxMemory int64) (*requests.CreatePatient, error) {
	request := new(requests.CreatePatient)
	if !isMultipartRequest(r) {
		body, err := readBody(r)
		if err != nil {
			return nil, err
		}
		if err := decodeJSONBody(body, request); err != nil {
			return nil, err
		}
		return request, nil
	}

	if err := parseMultipartForm(r, maxMemory, createPatientFormFields); err != nil {
		return nil, err
	}
	form := r.MultipartForm

	request.Name, _ = formValue(form, constvars.FormFieldName)
	request.Email, _ = formValue(form, constvars.FormFieldEmail)
	request.Phone, _ = formValue(form, constvars.FormFieldPhone)
	request.Gender, _ = formValue(form, constvars.FormFieldGender)
	request.Address, _ = formValue(form, constvars.FormFieldAddress)
	request.Disease, _ = formValue(form, constvars.FormFieldDisease)
	request.AssignedDoctor = formStringPointer(form, constvars.FormFieldAssignedDoctor)

	age, err := formIntPointer(form, constvars.FormFieldAge)
	if err != nil {
		return nil, err
	}
	request.Age = age

	request.Image, err = formImage(form)
	if err != nil {
		return nil, err
	}
	return request, nil
}

// BuildUpdatePatientRequest mirrors BuildCreatePatientRequest but leaves every
// field the client did not send as nil. A JSON null for assignedDoctor is kept
// as an empty value so it clears the reference instead of being ignored.
func BuildUpdatePatientRequest(r *http.Request, maxMemory int64) (*requests.UpdatePatient, error) {
	request := new(requests.UpdatePatient)
	if !isMultipartRequest(r) {
		body, err := readBody(r)
		if err != nil {
			return nil, err
		}
		if err := decodeJSONBody(body, request); err != nil {
			return nil, err
		}
		if request.AssignedDoctor == nil && jsonNullFields(body)[constvars.FormFieldAssignedDoctor] {
			cleared := ""
			request.AssignedDoctor = &cleared
		}
		return request, nil
	}

	if err := parseMultipartForm(r, maxMemory, updatePatientFormFields); err != nil {
		return nil, err
	}
	form := r.MultipartForm

	request.Name = formStringPointer(form, constvars.FormFieldName)
	request.Email = formStringPointer(form, constvars.FormFieldEmail)
	request.Phone = formStringPointer(form, constvars.FormFieldPhone)
	request.Gender = formStringPointer(form, constvars.FormFieldGender)
	request.Address = formStringPointer(form, constvars.FormFieldAddress)
	request.Disease = formStringPointer(form, constvars.FormFieldDisease)
	request.AssignedDoctor = formStringPointer(form, constvars.FormFieldAssignedDoctor)

	age, err := formIntPointer(form, constvars.FormFieldAge)
	if err != nil {
		return nil, err
	}
	request.Age = age

	request.Image, err = formImage(form)
	if err != nil {
		return nil, err
	}
	return request, nil
}

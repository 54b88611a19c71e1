package utils

import (
	"fmt"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/dto/requests"
	"hospital-records-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate         *validator.Validate
	phoneNumberRegex = regexp.MustCompile(`^\+?[0-9][0-9\-\s()]{5,19}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// validatePhoneNumber accepts an empty value so an update can clear the phone.
func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	if phoneNumber == "" {
		return true
	}
	return phoneNumberRegex.MatchString(phoneNumber)
}

// ValidateImageUpload checks the declared size against maxSizeInMB and sniffs
// the first 512 bytes for an allowed image type. The file is rewound
// afterwards so it can be stored from the start.
func ValidateImageUpload(upload *requests.ImageUpload, maxSizeInMB int64) (string, error) {
	maxSize := maxSizeInMB * 1024 * 1024
	if upload.Header.Size > maxSize {
		err := fmt.Errorf("image size %d exceeds limit of %d bytes", upload.Header.Size, maxSize)
		return "", exceptions.ErrImageValidation(err, constvars.ErrClientImageTooLarge)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(upload.File, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", exceptions.ErrCannotParseMultipartForm(err)
	}
	if _, err := upload.File.Seek(0, io.SeekStart); err != nil {
		return "", exceptions.ErrCannotParseMultipartForm(err)
	}

	contentType := http.DetectContentType(head[:n])
	if !constvars.ImageAllowedContentTypes[contentType] {
		err := fmt.Errorf("content type %s is not an allowed image type", contentType)
		return "", exceptions.ErrImageValidation(err, constvars.ErrClientInvalidImageFormat)
	}
	return contentType, nil
}

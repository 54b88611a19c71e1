package utils

import (
	"fmt"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/exceptions"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsDoctorReferenceSentinel reports whether a submitted doctor reference means
// "no doctor". Sentinels are compared trimmed and case-insensitively.
func IsDoctorReferenceSentinel(ref string) bool {
	return constvars.DoctorReferenceSentinels[strings.ToLower(strings.TrimSpace(ref))]
}

// ParseDoctorReference maps a submitted assignedDoctor value to the id to store.
// A nil ref leaves the field untouched, a sentinel clears it, and anything else
// must be a valid ObjectID.
func ParseDoctorReference(ref *string) (id *primitive.ObjectID, clear bool, err error) {
	if ref == nil {
		return nil, false, nil
	}
	if IsDoctorReferenceSentinel(*ref) {
		return nil, true, nil
	}

	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(*ref))
	if err != nil {
		return nil, false, exceptions.ErrInvalidDoctorReference(fmt.Errorf("assignedDoctor %q: %w", *ref, err))
	}
	return &objectID, false, nil
}

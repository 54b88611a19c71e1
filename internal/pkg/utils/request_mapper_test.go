package utils

import (
	"errors"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPointer(value string) *string {
	return &value
}

func TestParseDoctorReference(t *testing.T) {
	t.Run("Nil Reference Leaves Field Untouched", func(t *testing.T) {
		id, clear, err := ParseDoctorReference(nil)

		require.NoError(t, err)
		assert.Nil(t, id)
		assert.False(t, clear)
	})

	sentinels := []string{"", "null", "undefined", " NULL ", "Undefined", "   "}
	for _, sentinel := range sentinels {
		t.Run("Sentinel "+sentinel, func(t *testing.T) {
			id, clear, err := ParseDoctorReference(stringPointer(sentinel))

			require.NoError(t, err)
			assert.Nil(t, id)
			assert.True(t, clear, "sentinel %q should clear the reference", sentinel)
		})
	}

	t.Run("Valid ObjectID", func(t *testing.T) {
		id, clear, err := ParseDoctorReference(stringPointer("64b7f0c2a1b2c3d4e5f60718"))

		require.NoError(t, err)
		require.NotNil(t, id)
		assert.False(t, clear)
		assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", id.Hex())
	})

	t.Run("Malformed Reference Is Rejected", func(t *testing.T) {
		id, clear, err := ParseDoctorReference(stringPointer("dr-house"))

		require.Error(t, err)
		assert.Nil(t, id)
		assert.False(t, clear)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidDoctorReference, customErr.ClientMessage)
	})
}

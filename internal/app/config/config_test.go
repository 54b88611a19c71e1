package config

import (
	"hospital-records-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenAddress(t *testing.T) {
	tests := []struct {
		name     string
		appPort  string
		port     string
		expected string
	}{
		{name: "app port wins", appPort: ":9090", port: "3000", expected: ":9090"},
		{name: "bare port", port: "3000", expected: ":3000"},
		{name: "port with host", port: "0.0.0.0:3000", expected: "0.0.0.0:3000"},
		{name: "default", expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, listenAddress(tt.appPort, tt.port))
		})
	}
}

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("APP_PORT", "")
		t.Setenv("PORT", "")

		cfg := NewInternalConfig()

		assert.Equal(t, ":8080", cfg.App.Port)
		assert.Equal(t, 10, cfg.App.RequestTimeoutInSeconds)
		assert.Equal(t, 6, cfg.App.RequestBodyLimitInMegabyte)
		assert.Equal(t, int64(2), cfg.App.ImageMaxUploadSizeInMB)
		assert.Equal(t, constvars.MongoCollectionDoctors, cfg.MongoDB.DoctorCollection)
		assert.Equal(t, constvars.StorageDriverLocal, cfg.Storage.Driver)
		assert.Equal(t, "upload", cfg.Storage.UploadDir)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("PORT", "5000")
		t.Setenv("APP_PORT", "")
		t.Setenv("MONGODB_DOCTOR_COLLECTION", "physicians")
		t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

		cfg := NewInternalConfig()

		assert.Equal(t, ":5000", cfg.App.Port)
		assert.Equal(t, "physicians", cfg.MongoDB.DoctorCollection)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSAllowedOrigins)
	})
}

func TestNewDriverConfig_MongoURI(t *testing.T) {
	t.Run("MONGODB_URI Preferred", func(t *testing.T) {
		t.Setenv("MONGODB_URI", "mongodb://primary:27017")
		t.Setenv("MONGO_URI", "mongodb://legacy:27017")

		assert.Equal(t, "mongodb://primary:27017", NewDriverConfig().MongoDB.URI)
	})
}

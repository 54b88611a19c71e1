package config

import (
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", utils.GetEnvString("MONGO_URI", "")),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "hospital"),
		},
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       listenAddress(utils.GetEnvString("APP_PORT", ""), utils.GetEnvString("PORT", "")),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			ImageMaxUploadSizeInMB:     utils.GetEnvInt64("APP_IMAGE_MAX_UPLOAD_SIZE_IN_MB", 2),
			PatientCacheTTLInSeconds:   utils.GetEnvInt("APP_PATIENT_CACHE_TTL_IN_SECONDS", 300),
			CORSAllowedOrigins:         splitAndTrim(utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*")),
		},
		MongoDB: AppMongoDB{
			PatientCollection: utils.GetEnvString("MONGODB_PATIENT_COLLECTION", constvars.MongoCollectionPatients),
			DoctorCollection:  utils.GetEnvString("MONGODB_DOCTOR_COLLECTION", constvars.MongoCollectionDoctors),
		},
		Storage: AppStorage{
			Driver:    utils.GetEnvString("STORAGE_DRIVER", constvars.StorageDriverLocal),
			UploadDir: utils.GetEnvString("UPLOAD_DIR", "upload"),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "patient-images"),
		},
		RabbitMQ: AppRabbitMQ{
			PatientEventQueue: utils.GetEnvString("RABBITMQ_PATIENT_EVENT_QUEUE", "patient-events"),
		},
	}
}

// listenAddress prefers APP_PORT and falls back to the bare PORT variable that
// hosting platforms inject.
func listenAddress(appPort, port string) string {
	if appPort != "" {
		return appPort
	}
	if port != "" {
		if strings.Contains(port, ":") {
			return port
		}
		return ":" + port
	}
	return ":8080"
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

package logger

import (
	"hospital-records-service/internal/app/config"
	"hospital-records-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
)

const accessLogFileName = "access.log"

// NewLogrusLogger builds the access logger. Production writes JSON lines to
// access.log, everything else writes text to stderr.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile(accessLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to log to file, using default stderr")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

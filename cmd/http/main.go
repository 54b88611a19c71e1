package main

import (
	"context"
	"hospital-records-service/internal/app/config"
	"hospital-records-service/internal/app/contracts"
	"hospital-records-service/internal/app/delivery/http/handlers"
	"hospital-records-service/internal/app/delivery/http/middlewares"
	"hospital-records-service/internal/app/delivery/http/routers"
	"hospital-records-service/internal/app/drivers/database"
	"hospital-records-service/internal/app/drivers/logger"
	"hospital-records-service/internal/app/drivers/messaging"
	minioDriver "hospital-records-service/internal/app/drivers/storage"
	"hospital-records-service/internal/app/services/core/patients"
	messagingService "hospital-records-service/internal/app/services/shared/messaging"
	redisService "hospital-records-service/internal/app/services/shared/redis"
	"hospital-records-service/internal/app/services/shared/storage"
	"hospital-records-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version and Tag are set at build time with -ldflags.
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(internalConfig)

	log.Info("Starting hospital records service",
		zap.String("version", Version),
		zap.String("tag", Tag),
		zap.String("env", internalConfig.App.Env),
	)

	mongoClient := database.NewMongoDB(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Logger:         log,
		AccessLogger:   accessLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to close drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx := context.Background()
	internalConfig := bootstrap.InternalConfig
	driverConfig := bootstrap.DriverConfig

	// Redis
	redisRepository := redisService.NewNoopRedisRepository()
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
		redisRepository = redisService.NewRedisRepository(bootstrap.Redis)
	}

	// Storage
	var imageStorage contracts.Storage
	switch internalConfig.Storage.Driver {
	case constvars.StorageDriverMinio:
		bootstrap.Minio = minioDriver.NewMinio(driverConfig)
		err := storage.EnsureMinioBucket(ctx, bootstrap.Minio, internalConfig.Minio.BucketName)
		if err != nil {
			return err
		}
		imageStorage = storage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.BucketName, bootstrap.Logger)
	default:
		localStorage, err := storage.NewLocalStorage(internalConfig.Storage.UploadDir, bootstrap.Logger)
		if err != nil {
			return err
		}
		imageStorage = localStorage
	}

	// Events
	bootstrap.EventPublisher = messagingService.NewNoopEventPublisher()
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
		publisher, err := messagingService.NewPatientEventPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.PatientEventQueue, bootstrap.Logger)
		if err != nil {
			return err
		}
		bootstrap.EventPublisher = publisher
	}

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		internalConfig.MongoDB.PatientCollection,
		internalConfig.MongoDB.DoctorCollection,
	)
	err := patientMongoRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}
	patientUsecase := patients.NewPatientUsecase(
		patientMongoRepository,
		imageStorage,
		redisRepository,
		bootstrap.EventPublisher,
		internalConfig,
		bootstrap.Logger,
	)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase, internalConfig)

	// HTTP
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.AccessLogger, internalConfig)
	uploadHandler := handlers.NewUploadHandler(bootstrap.Logger, imageStorage)
	systemHandler := handlers.NewSystemHandler(bootstrap.Logger, bootstrap.MongoDB.Client(), internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, patientController, uploadHandler, systemHandler)
	return nil
}

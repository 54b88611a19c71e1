package routers

import (
	"hospital-records-service/internal/app/config"
	"hospital-records-service/internal/app/delivery/http/handlers"
	"hospital-records-service/internal/app/delivery/http/middlewares"
	"hospital-records-service/internal/app/services/core/patients"
	"hospital-records-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	uploadHandler *handlers.UploadHandler,
	systemHandler *handlers.SystemHandler,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CORSAllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	router.NotFound(systemHandler.NotFound)
	router.MethodNotAllowed(systemHandler.MethodNotAllowed)

	attachSystemRoutes(router, systemHandler, uploadHandler)

	router.Route("/api/patient", func(r chi.Router) {
		attachPatientRoutes(r, patientController)
	})
}

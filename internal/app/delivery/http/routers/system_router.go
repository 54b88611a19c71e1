package routers

import (
	"hospital-records-service/internal/app/delivery/http/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func attachSystemRoutes(router chi.Router, systemHandler *handlers.SystemHandler, uploadHandler *handlers.UploadHandler) {
	router.Get("/", systemHandler.Root)
	router.Get("/healthz", systemHandler.Health)
	router.Method("GET", "/metrics", promhttp.Handler())
	router.Get("/upload/*", uploadHandler.ServeFile)
}

package routers

import (
	"hospital-records-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Get("/", patientController.FindAll)
	router.Get("/search/{key}", patientController.Search)
	router.Get("/{id}", patientController.FindByID)
	router.Post("/", patientController.Create)
	router.Put("/{id}", patientController.Update)
	router.Delete("/{id}", patientController.Delete)
}

package contracts

import (
	"context"
	"hospital-records-service/internal/app/models"
	"hospital-records-service/internal/pkg/dto/requests"
	"hospital-records-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	FindAll(ctx context.Context) ([]responses.Patient, error)
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
	Search(ctx context.Context, key string) ([]responses.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	Delete(ctx context.Context, patientID string) error
}

// PatientRepository returns (nil, nil) from the single-document finders when
// nothing matches, including when patientID is not a valid ObjectID.
type PatientRepository interface {
	EnsureIndexes(ctx context.Context) error
	FindAll(ctx context.Context) ([]models.PatientWithDoctor, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	Search(ctx context.Context, key string) ([]models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) (string, error)
	Update(ctx context.Context, patientID string, changes models.PatientChanges) (*models.Patient, error)
	DeleteByID(ctx context.Context, patientID string) (int64, error)
}

package patients

import (
	"context"
	"hospital-records-service/internal/app/models"
	"hospital-records-service/internal/pkg/dto/requests"
	"hospital-records-service/internal/pkg/dto/responses"
	"io"
	"mime/multipart"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.PatientWithDoctor, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]models.PatientWithDoctor)
	return patients, args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	args := m.Called(ctx, email)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) Search(ctx context.Context, key string) ([]models.Patient, error) {
	args := m.Called(ctx, key)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, patientID string, changes models.PatientChanges) (*models.Patient, error) {
	args := m.Called(ctx, patientID, changes)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) DeleteByID(ctx context.Context, patientID string) (int64, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).(int64), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, contentType string) (string, error) {
	args := m.Called(ctx, file, fileHeader, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) OpenFile(ctx context.Context, fileName string) (*models.StoredFile, error) {
	args := m.Called(ctx, fileName)
	storedFile, _ := args.Get(0).(*models.StoredFile)
	return storedFile, args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishPatientEvent(ctx context.Context, event models.PatientEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]responses.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) Search(ctx context.Context, key string) ([]responses.Patient, error) {
	args := m.Called(ctx, key)
	patients, _ := args.Get(0).([]responses.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, request)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, patientID, request)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) Delete(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

package patients

import (
	"context"
	"hospital-records-service/internal/app/config"
	"hospital-records-service/internal/app/contracts"
	"hospital-records-service/internal/app/models"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/dto/requests"
	"hospital-records-service/internal/pkg/dto/responses"
	"hospital-records-service/internal/pkg/exceptions"
	"hospital-records-service/internal/pkg/metrics"
	"hospital-records-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Storage           contracts.Storage
	RedisRepository   contracts.RedisRepository
	EventPublisher    contracts.EventPublisher
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	storage contracts.Storage,
	redisRepository contracts.RedisRepository,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Storage:           storage,
		RedisRepository:   redisRepository,
		EventPublisher:    eventPublisher,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *patientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error fetching patients from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Patient, 0, len(patients))
	for _, patient := range patients {
		response = append(response, patient.ConvertIntoResponse())
	}

	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(response)),
	)
	return response, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if cached := uc.getCachedPatient(ctx, patientID); cached != nil {
		return cached, nil
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.FindByID error fetching patient from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	response := patient.ConvertIntoResponse()
	uc.cachePatient(ctx, &response)
	return &response, nil
}

func (uc *patientUsecase) Search(ctx context.Context, key string) ([]responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchKey, key),
	)

	patients, err := uc.PatientRepository.Search(ctx, key)
	if err != nil {
		uc.Log.Error("patientUsecase.Search error searching patients in MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSearchKey, key),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Patient, 0, len(patients))
	for _, patient := range patients {
		response = append(response, patient.ConvertIntoResponse())
	}
	return response, nil
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	defer request.Image.Close()

	utils.SanitizeCreatePatientRequest(request)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientEmailKey, request.Email),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctorID, _, err := utils.ParseDoctorReference(request.AssignedDoctor)
	if err != nil {
		return nil, err
	}

	existingPatient, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error checking email in MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingPatient != nil {
		uc.Log.Warn("patientUsecase.Create email already used",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientEmailKey, request.Email),
		)
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	imageName, err := uc.uploadImage(ctx, request.Image)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{
		Name:           request.Name,
		Email:          request.Email,
		Phone:          request.Phone,
		Age:            request.Age,
		Gender:         request.Gender,
		Address:        request.Address,
		Disease:        request.Disease,
		AssignedDoctor: doctorID,
		Image:          imageName,
	}
	patient.SetCreatedAtUpdatedAt()

	patientID, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error inserting patient into MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientEmailKey, request.Email),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ID, _ = primitive.ObjectIDFromHex(patientID)

	uc.publishEvent(ctx, constvars.PatientEventCreated, patient)
	utils.LogBusinessEvent(uc.Log, constvars.PatientEventCreated, requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	defer request.Image.Close()

	utils.SanitizeUpdatePatientRequest(request)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctorID, clearDoctor, err := utils.ParseDoctorReference(request.AssignedDoctor)
	if err != nil {
		return nil, err
	}

	existingPatient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if existingPatient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	if request.Email != nil && *request.Email != existingPatient.Email {
		emailOwner, err := uc.PatientRepository.FindByEmail(ctx, *request.Email)
		if err != nil {
			return nil, err
		}
		if emailOwner != nil && emailOwner.ID != existingPatient.ID {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
	}

	changes := models.PatientChanges{
		Name:                request.Name,
		Email:               request.Email,
		Phone:               request.Phone,
		Age:                 request.Age,
		Gender:              request.Gender,
		Address:             request.Address,
		Disease:             request.Disease,
		AssignedDoctor:      doctorID,
		ClearAssignedDoctor: clearDoctor,
	}

	if request.Image != nil {
		imageName, err := uc.uploadImage(ctx, request.Image)
		if err != nil {
			return nil, err
		}
		changes.Image = &imageName
	}

	setFields, unsetFields := changes.FieldNames()
	uc.Log.Debug("patientUsecase.Update payload",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Strings(constvars.LoggingUpdateFieldsKey, setFields),
		zap.Strings(constvars.LoggingUnsetFieldsKey, unsetFields),
	)

	patient, err := uc.PatientRepository.Update(ctx, patientID, changes)
	if err != nil {
		uc.Log.Error("patientUsecase.Update error updating patient in MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	uc.invalidateCachedPatient(ctx, patientID)
	uc.publishEvent(ctx, constvars.PatientEventUpdated, patient)
	utils.LogBusinessEvent(uc.Log, constvars.PatientEventUpdated, requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) Delete(ctx context.Context, patientID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	deletedCount, err := uc.PatientRepository.DeleteByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.Delete error deleting patient from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return err
	}
	if deletedCount == 0 {
		return exceptions.ErrPatientNotFound(nil)
	}

	objectID, _ := primitive.ObjectIDFromHex(patientID)
	uc.invalidateCachedPatient(ctx, patientID)
	uc.publishEvent(ctx, constvars.PatientEventDeleted, &models.Patient{ID: objectID})
	utils.LogBusinessEvent(uc.Log, constvars.PatientEventDeleted, requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int64(constvars.LoggingDeletedCountKey, deletedCount),
	)
	return nil
}

func (uc *patientUsecase) uploadImage(ctx context.Context, image *requests.ImageUpload) (string, error) {
	if image == nil {
		return "", nil
	}

	contentType, err := utils.ValidateImageUpload(image, uc.InternalConfig.App.ImageMaxUploadSizeInMB)
	if err != nil {
		return "", err
	}

	fileName, err := uc.Storage.UploadFile(ctx, image.File, image.Header, contentType)
	if err != nil {
		uc.Log.Error("patientUsecase.uploadImage error storing image",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return "", err
	}
	return fileName, nil
}

// getCachedPatient treats every cache failure as a miss.
func (uc *patientUsecase) getCachedPatient(ctx context.Context, patientID string) *responses.Patient {
	redisKey := constvars.RedisKeyPatientPrefix + patientID
	data, err := uc.RedisRepository.Get(ctx, redisKey)
	if err != nil {
		uc.Log.Warn("patientUsecase.getCachedPatient error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return nil
	}
	if data == "" {
		metrics.RecordPatientCacheLookup(false)
		return nil
	}

	var patient responses.Patient
	if err := json.Unmarshal([]byte(data), &patient); err != nil {
		uc.Log.Warn("patientUsecase.getCachedPatient error decoding cached patient",
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return nil
	}
	metrics.RecordPatientCacheLookup(true)
	return &patient
}

func (uc *patientUsecase) cachePatient(ctx context.Context, patient *responses.Patient) {
	redisKey := constvars.RedisKeyPatientPrefix + patient.ID
	ttl := time.Duration(uc.InternalConfig.App.PatientCacheTTLInSeconds) * time.Second
	if err := uc.RedisRepository.Set(ctx, redisKey, patient, ttl); err != nil {
		uc.Log.Warn("patientUsecase.cachePatient error storing data in Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
	}
}

func (uc *patientUsecase) invalidateCachedPatient(ctx context.Context, patientID string) {
	redisKey := constvars.RedisKeyPatientPrefix + patientID
	if err := uc.RedisRepository.Delete(ctx, redisKey); err != nil {
		uc.Log.Warn("patientUsecase.invalidateCachedPatient error deleting data from Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
	}
}

// publishEvent never fails the request. The write has already happened.
func (uc *patientUsecase) publishEvent(ctx context.Context, event string, patient *models.Patient) {
	requestID := utils.GetRequestID(ctx)
	err := uc.EventPublisher.PublishPatientEvent(ctx, models.PatientEvent{
		Event:      event,
		PatientID:  patient.ID.Hex(),
		Email:      patient.Email,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		uc.Log.Warn("patientUsecase.publishEvent error publishing patient event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event),
			zap.Error(err),
		)
	}
}

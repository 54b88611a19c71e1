package patients

import (
	"context"
	"errors"
	"hospital-records-service/internal/app/config"
	"hospital-records-service/internal/app/contracts"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/exceptions"
	"hospital-records-service/internal/pkg/metrics"
	"hospital-records-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// multipartMemoryLimit is how much of a multipart body is held in memory
// before file parts spill to temporary files.
const multipartMemoryLimit = 8 << 20

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}

// writeError reports store timeouts as 504 whether they surface as the context
// deadline or as a driver timeout.
func (ctrl *PatientController) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.FindAll(ctx)
	metrics.RecordPatientOperation(constvars.PatientOperationList, err)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, result)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.FindByID(ctx, patientID)
	metrics.RecordPatientOperation(constvars.PatientOperationGet, err)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, result)
}

func (ctrl *PatientController) Search(w http.ResponseWriter, r *http.Request) {
	key, err := searchKeyParam(r)
	if err != nil {
		metrics.RecordPatientOperation(constvars.PatientOperationSearch, err)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.Search(ctx, key)
	metrics.RecordPatientOperation(constvars.PatientOperationSearch, err)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchPatientsSuccessMessage, result)
}

// searchKeyParam returns the decoded search key. chi routes on RawPath when
// the client escaped characters such as '@' or '/', leaving the param encoded.
func searchKeyParam(r *http.Request) (string, error) {
	key := chi.URLParam(r, constvars.URLParamSearchKey)
	if r.URL.RawPath == "" {
		return key, nil
	}

	decoded, err := url.PathUnescape(key)
	if err != nil {
		return "", exceptions.ErrCannotParseFormValue(err, constvars.URLParamSearchKey)
	}
	return decoded, nil
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	request, err := utils.BuildCreatePatientRequest(r, multipartMemoryLimit)
	if err != nil {
		metrics.RecordPatientOperation(constvars.PatientOperationCreate, err)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.Create(ctx, request)
	metrics.RecordPatientOperation(constvars.PatientOperationCreate, err)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, result)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request, err := utils.BuildUpdatePatientRequest(r, multipartMemoryLimit)
	if err != nil {
		metrics.RecordPatientOperation(constvars.PatientOperationUpdate, err)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.Update(ctx, patientID, request)
	metrics.RecordPatientOperation(constvars.PatientOperationUpdate, err)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, result)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.PatientUsecase.Delete(ctx, patientID)
	metrics.RecordPatientOperation(constvars.PatientOperationDelete, err)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, nil)
}

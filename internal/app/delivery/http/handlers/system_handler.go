package handlers

import (
	"context"
	"hospital-records-service/internal/app/config"
	"hospital-records-service/internal/app/contracts"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/exceptions"
	"hospital-records-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// SystemHandler answers the banner and health endpoints.
type SystemHandler struct {
	Log            *zap.Logger
	MongoDB        contracts.DatabasePinger
	InternalConfig *config.InternalConfig
}

func NewSystemHandler(logger *zap.Logger, mongoDB contracts.DatabasePinger, internalConfig *config.InternalConfig) *SystemHandler {
	return &SystemHandler{
		Log:            logger,
		MongoDB:        mongoDB,
		InternalConfig: internalConfig,
	}
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	w.Write([]byte(constvars.ServerRunningMessage))
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.MongoDB.Ping(ctx, readpref.Primary()); err != nil {
		utils.BuildErrorResponse(h.Log, w, exceptions.ErrMongoDBPing(err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, map[string]string{
		"mongodb": "up",
		"version": h.InternalConfig.App.Version,
	})
}

func (h *SystemHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(h.Log, w, exceptions.ErrRouteNotFound(nil, r.Method, r.URL.Path))
}

func (h *SystemHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(h.Log, w, exceptions.ErrMethodNotAllowed(nil, r.Method, r.URL.Path))
}

package handlers

import (
	"hospital-records-service/internal/app/contracts"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UploadHandler serves stored patient images under /upload/.
type UploadHandler struct {
	Log     *zap.Logger
	Storage contracts.Storage
}

func NewUploadHandler(logger *zap.Logger, storage contracts.Storage) *UploadHandler {
	return &UploadHandler{Log: logger, Storage: storage}
}

// ServeFile streams the named object. Range and conditional requests are
// handled by http.ServeContent.
func (h *UploadHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	fileName := chi.URLParam(r, constvars.URLParamUploadName)

	file, err := h.Storage.OpenFile(r.Context(), fileName)
	if err != nil {
		utils.BuildErrorResponse(h.Log, w, err)
		return
	}
	defer file.Content.Close()

	if file.ContentType != "" {
		w.Header().Set(constvars.HeaderContentType, file.ContentType)
	}
	http.ServeContent(w, r, file.Name, file.ModTime, file.Content)
}

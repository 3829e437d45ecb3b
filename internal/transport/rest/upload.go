package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
	"github.com/heartmarshall/gis-admissions-backend/internal/service/upload"
)

type uploadService interface {
	Presign(ctx context.Context, input upload.PresignInput) (*domain.PresignedUpload, error)
}

// UploadHandler serves presigned upload URLs.
type UploadHandler struct {
	svc uploadService
	log *slog.Logger
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(svc uploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{svc: svc, log: logger.With("handler", "upload")}
}

// Presign handles POST /api/uploads/presign.
func (h *UploadHandler) Presign(w http.ResponseWriter, r *http.Request) {
	var input upload.PresignInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Presign(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

type notificationService interface {
	SendBatch(ctx context.Context, status domain.ApplicationStatus) (domain.BatchResult, error)
}

// NotificationHandler serves the batch mailing endpoints. Routes must be
// gated with middleware.RequireAdmin.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

// SendBatch returns the handler for POST /api/notifications/<kind> sending
// the batch of status.
func (h *NotificationHandler) SendBatch(status domain.ApplicationStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.svc.SendBatch(r.Context(), status)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

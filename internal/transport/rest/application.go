package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
	"github.com/heartmarshall/gis-admissions-backend/internal/service/application"
)

type applicationService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.NormalizedApplication, error)
	Mine(ctx context.Context) ([]domain.NormalizedApplication, error)
	Draft(ctx context.Context) (*domain.NormalizedApplication, error)
	Search(ctx context.Context, input application.SearchInput) ([]domain.ApplicationGroup, error)
	Save(ctx context.Context, input application.SaveInput) (*domain.NormalizedApplication, error)
	UpdateStatus(ctx context.Context, input application.UpdateStatusInput) (*domain.NormalizedApplication, error)
	GetDocumentComment(ctx context.Context, input application.DocumentRefInput) (*string, error)
	GetDocumentStatus(ctx context.Context, input application.DocumentRefInput) (*domain.DocumentStatus, error)
	SetDocumentComment(ctx context.Context, input application.SetDocumentCommentInput) (string, error)
	SetDocumentStatus(ctx context.Context, input application.SetDocumentStatusInput) (domain.DocumentStatus, error)
}

// ApplicationHandler serves the application REST endpoints.
type ApplicationHandler struct {
	svc applicationService
	log *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: logger.With("handler", "application")}
}

type updateStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
	Note   *string                  `json:"note,omitempty"`
}

type documentCommentRequest struct {
	PublicURL string `json:"publicUrl"`
	Comment   string `json:"comment"`
}

type documentStatusRequest struct {
	PublicURL string                `json:"publicUrl"`
	Status    domain.DocumentStatus `json:"status"`
}

type documentCommentResponse struct {
	PublicURL string  `json:"publicUrl"`
	Comment   *string `json:"comment"`
}

type documentStatusResponse struct {
	PublicURL string                 `json:"publicUrl"`
	Status    *domain.DocumentStatus `json:"status"`
}

// Get handles GET /api/applications/{id}. An absent or foreign application
// is answered with 200 and a null body.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// Mine handles GET /api/applications/mine.
func (h *ApplicationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.Mine(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if apps == nil {
		apps = []domain.NormalizedApplication{}
	}
	writeJSON(w, http.StatusOK, apps)
}

// Draft handles GET /api/applications/draft.
func (h *ApplicationHandler) Draft(w http.ResponseWriter, r *http.Request) {
	app, err := h.svc.Draft(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// Search handles GET /api/applications?q=&page=0&size=10&groupBy=status.
func (h *ApplicationHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	size, err := queryInt(r, "size")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q := r.URL.Query()
	groups, err := h.svc.Search(r.Context(), application.SearchInput{
		Query:   q.Get("q"),
		Page:    page,
		Size:    size,
		GroupBy: q.Get("groupBy"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// Save handles PUT /api/applications.
func (h *ApplicationHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input application.SaveInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.Save(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// UpdateStatus handles POST /api/applications/{id}/status.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.UpdateStatus(r.Context(), application.UpdateStatusInput{
		ApplicationID: id,
		Status:        req.Status,
		Note:          req.Note,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// GetDocumentComment handles GET /api/applications/{id}/documents/comment?publicUrl=.
func (h *ApplicationHandler) GetDocumentComment(w http.ResponseWriter, r *http.Request) {
	ref, err := documentRef(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	comment, err := h.svc.GetDocumentComment(r.Context(), ref)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentCommentResponse{PublicURL: ref.PublicURL, Comment: comment})
}

// GetDocumentStatus handles GET /api/applications/{id}/documents/status?publicUrl=.
func (h *ApplicationHandler) GetDocumentStatus(w http.ResponseWriter, r *http.Request) {
	ref, err := documentRef(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status, err := h.svc.GetDocumentStatus(r.Context(), ref)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentStatusResponse{PublicURL: ref.PublicURL, Status: status})
}

// SetDocumentComment handles PUT /api/applications/{id}/documents/comment.
func (h *ApplicationHandler) SetDocumentComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req documentCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	comment, err := h.svc.SetDocumentComment(r.Context(), application.SetDocumentCommentInput{
		DocumentRefInput: application.DocumentRefInput{ApplicationID: id, PublicURL: req.PublicURL},
		Comment:          req.Comment,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentCommentResponse{PublicURL: req.PublicURL, Comment: &comment})
}

// SetDocumentStatus handles PUT /api/applications/{id}/documents/status.
func (h *ApplicationHandler) SetDocumentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req documentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status, err := h.svc.SetDocumentStatus(r.Context(), application.SetDocumentStatusInput{
		DocumentRefInput: application.DocumentRefInput{ApplicationID: id, PublicURL: req.PublicURL},
		Status:           req.Status,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentStatusResponse{PublicURL: req.PublicURL, Status: &status})
}

func documentRef(r *http.Request) (application.DocumentRefInput, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return application.DocumentRefInput{}, err
	}
	return application.DocumentRefInput{
		ApplicationID: id,
		PublicURL:     r.URL.Query().Get("publicUrl"),
	}, nil
}

package rest

import (
	"net/http"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
	"github.com/heartmarshall/gis-admissions-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health       *HealthHandler
	Application  *ApplicationHandler
	Notification *NotificationHandler
	// Upload is nil when object storage is not configured; the presign
	// route is then not mounted.
	Upload *UploadHandler
}

// RouterOptions holds the cross-cutting middleware of the API.
type RouterOptions struct {
	// API wraps every /api route (auth, logging, rate limiting).
	API middleware.Middleware
	// MaxBodyBytes limits request bodies on /api routes. Zero disables it.
	MaxBodyBytes int64
}

// NewRouter mounts every route on a ServeMux. Health probes bypass the API
// middleware.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	api := http.NewServeMux()

	app := h.Application
	api.HandleFunc("GET /api/applications", app.Search)
	api.HandleFunc("PUT /api/applications", app.Save)
	api.HandleFunc("GET /api/applications/mine", app.Mine)
	api.HandleFunc("GET /api/applications/draft", app.Draft)
	api.HandleFunc("GET /api/applications/{id}", app.Get)
	api.HandleFunc("POST /api/applications/{id}/status", app.UpdateStatus)
	api.HandleFunc("GET /api/applications/{id}/documents/comment", app.GetDocumentComment)
	api.HandleFunc("PUT /api/applications/{id}/documents/comment", app.SetDocumentComment)
	api.HandleFunc("GET /api/applications/{id}/documents/status", app.GetDocumentStatus)
	api.HandleFunc("PUT /api/applications/{id}/documents/status", app.SetDocumentStatus)

	admin := middleware.RequireAdmin()
	batches := map[string]domain.ApplicationStatus{
		"phone-interview":  domain.ApplicationStatusPhoneInterviewPhase,
		"onsite-interview": domain.ApplicationStatusOnsiteInterviewPhase,
		"accepted":         domain.ApplicationStatusAccepted,
		"rejected":         domain.ApplicationStatusRejected,
	}
	for kind, status := range batches {
		api.Handle("POST /api/notifications/"+kind, admin(h.Notification.SendBatch(status)))
	}

	if h.Upload != nil {
		api.HandleFunc("POST /api/uploads/presign", h.Upload.Presign)
	}
	api.HandleFunc("GET /api/statuses", Statuses)

	var apiHandler http.Handler = api
	if opts.MaxBodyBytes > 0 {
		apiHandler = limitBody(apiHandler, opts.MaxBodyBytes)
	}
	if opts.API != nil {
		apiHandler = opts.API(apiHandler)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("/api/", apiHandler)
	return mux
}

func limitBody(next http.Handler, n int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		next.ServeHTTP(w, r)
	})
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/gis-admissions-backend/internal/adapter/mailer"
	"github.com/heartmarshall/gis-admissions-backend/internal/adapter/postgres"
	applicationrepo "github.com/heartmarshall/gis-admissions-backend/internal/adapter/postgres/application"
	"github.com/heartmarshall/gis-admissions-backend/internal/adapter/postgres/relation"
	"github.com/heartmarshall/gis-admissions-backend/internal/adapter/storage"
	"github.com/heartmarshall/gis-admissions-backend/internal/auth"
	"github.com/heartmarshall/gis-admissions-backend/internal/config"
	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
	"github.com/heartmarshall/gis-admissions-backend/internal/service/application"
	"github.com/heartmarshall/gis-admissions-backend/internal/service/notification"
	"github.com/heartmarshall/gis-admissions-backend/internal/service/upload"
	"github.com/heartmarshall/gis-admissions-backend/internal/transport/middleware"
	"github.com/heartmarshall/gis-admissions-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// Services holds the constructed domain services.
type Services struct {
	Application  *application.Service
	Notification *notification.Service
	// Upload is nil when object storage is not configured.
	Upload *upload.Service
}

type mailSender interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// NewServices wires repositories and adapters into the domain services.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Services, error) {
	txm := postgres.NewTxManager(pool)
	appRepo := applicationrepo.New(pool)
	relationRepo := relation.New(pool)

	appService := application.NewService(logger, appRepo, relationRepo, txm, application.Options{
		BirthDateFallback: cfg.Application.BirthDateFallback,
		Deadline:          cfg.Application.LastApplicationDate,
	})

	sender, err := newMailSender(cfg.SMTP, logger)
	if err != nil {
		return nil, err
	}
	notificationService, err := notification.NewService(logger, appRepo, sender, notification.Options{
		From:              cfg.SMTP.From,
		CC:                cfg.SMTP.CC,
		ReplyTo:           cfg.SMTP.ReplyTo,
		BaseURL:           cfg.Notification.BaseURL,
		InterviewSchedule: cfg.Notification.InterviewSchedule,
		Concurrency:       cfg.Notification.Concurrency,
	})
	if err != nil {
		return nil, err
	}

	svcs := &Services{
		Application:  appService,
		Notification: notificationService,
	}

	if cfg.Storage.Enabled() {
		presigner, err := storage.NewPresigner(cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("create presigner: %w", err)
		}
		svcs.Upload = upload.NewService(logger, presigner)
	} else {
		logger.Warn("object storage not configured, upload presigning disabled")
	}

	return svcs, nil
}

func newMailSender(cfg config.SMTPConfig, logger *slog.Logger) (mailSender, error) {
	if !cfg.Enabled() {
		logger.Warn("smtp not configured, notification batches will fail until it is")
		return mailer.NewLogSender(logger), nil
	}
	sender, err := mailer.NewSender(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create mail sender: %w", err)
	}
	return sender, nil
}

// HTTPHandler is the assembled HTTP handler together with the background
// resources it owns.
type HTTPHandler struct {
	http.Handler
	limiter *middleware.RateLimiter
}

// Close stops background work started by NewHTTPHandler.
func (h *HTTPHandler) Close() {
	if h.limiter != nil {
		h.limiter.Stop()
	}
}

// NewHTTPHandler builds the middleware chain and the router. db backs the
// readiness probe.
func NewHTTPHandler(cfg *config.Config, svcs *Services, db rest.HealthCheck, logger *slog.Logger) *HTTPHandler {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	h := &HTTPHandler{}

	var rateLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		h.limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimitCleanupInterval)
		rateLimit = h.limiter.Limit()
	}

	api := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
	)

	handlers := rest.Handlers{
		Health:       rest.NewHealthHandler(BuildVersion(), db),
		Application:  rest.NewApplicationHandler(svcs.Application, logger),
		Notification: rest.NewNotificationHandler(svcs.Notification, logger),
	}
	if svcs.Upload != nil {
		handlers.Upload = rest.NewUploadHandler(svcs.Upload, logger)
	}

	h.Handler = rest.NewRouter(handlers, rest.RouterOptions{
		API:          api,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})
	return h
}

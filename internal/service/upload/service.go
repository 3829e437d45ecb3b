// Package upload issues presigned URLs for applicant document uploads.
package upload

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

type presigner interface {
	PresignPut(ctx context.Context, objectName string) (string, error)
	PublicURL(objectName string) string
}

// ObjectPrefix is the folder every uploaded document is stored under.
const ObjectPrefix = "images/"

// MaxFilenameLength limits the client-supplied file name.
const MaxFilenameLength = 200

// PresignInput is the request for one upload URL.
type PresignInput struct {
	Filename string `json:"filename"`
}

// Validate checks the input.
func (i PresignInput) Validate() error {
	name := strings.TrimSpace(i.Filename)
	switch {
	case name == "":
		return domain.NewValidationError("filename", "required")
	case len(name) > MaxFilenameLength:
		return domain.NewValidationError("filename", fmt.Sprintf("must be at most %d characters", MaxFilenameLength))
	}
	return nil
}

// Service issues upload URLs.
type Service struct {
	storage presigner
	log     *slog.Logger
}

// NewService creates a new Upload service.
func NewService(log *slog.Logger, storage presigner) *Service {
	return &Service{
		storage: storage,
		log:     log.With("service", "upload"),
	}
}

// Presign returns a URL the client may PUT the file to and the public URL
// the file will be readable at. The object name is unique per call.
func (s *Service) Presign(ctx context.Context, input PresignInput) (*domain.PresignedUpload, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	objectName := ObjectPrefix + uuid.NewString() + "-" + sanitizeFilename(input.Filename)

	uploadURL, err := s.storage.PresignPut(ctx, objectName)
	if err != nil {
		return nil, fmt.Errorf("upload.Presign: %w", err)
	}

	s.log.InfoContext(ctx, "upload presigned", slog.String("object", objectName))

	return &domain.PresignedUpload{
		URL:       uploadURL,
		PublicURL: s.storage.PublicURL(objectName),
	}, nil
}

// sanitizeFilename keeps the base name and replaces every character outside
// [A-Za-z0-9._-] with an underscore.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.TrimLeft(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}

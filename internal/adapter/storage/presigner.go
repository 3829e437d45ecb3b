// Package storage issues presigned upload URLs against S3-compatible object
// storage.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/heartmarshall/gis-admissions-backend/internal/config"
)

// Presigner issues presigned PUT URLs for one bucket.
type Presigner struct {
	client    *minio.Client
	bucket    string
	publicURL string
	ttl       time.Duration
	log       *slog.Logger
}

// NewPresigner creates a Presigner from the storage settings. No network
// call is made.
func NewPresigner(cfg config.StorageConfig, logger *slog.Logger) (*Presigner, error) {
	endpoint := net.JoinHostPort(cfg.Endpoint, strconv.Itoa(cfg.Port))
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Scheme == "https",
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: create client: %w", err)
	}

	return &Presigner{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: PublicBaseURL(cfg) + "/" + cfg.Bucket,
		ttl:       cfg.UploadTTL,
		log:       logger.With("adapter", "storage"),
	}, nil
}

// PublicBaseURL returns the CDN URL when configured, otherwise the storage
// endpoint itself.
func PublicBaseURL(cfg config.StorageConfig) string {
	if cfg.CDNURL != "" {
		return strings.TrimRight(cfg.CDNURL, "/")
	}
	return fmt.Sprintf("%s://%s:%d", cfg.Scheme, cfg.Endpoint, cfg.Port)
}

// PresignPut returns a URL the client may PUT the object to until the
// configured TTL passes.
func (p *Presigner) PresignPut(ctx context.Context, objectName string) (string, error) {
	u, err := p.client.PresignedPutObject(ctx, p.bucket, objectName, p.ttl)
	if err != nil {
		p.log.ErrorContext(ctx, "presign failed", slog.String("object", objectName), slog.String("error", err.Error()))
		return "", fmt.Errorf("storage: presign %s: %w", objectName, err)
	}
	return u.String(), nil
}

// PublicURL returns the URL the object is readable at once uploaded.
func (p *Presigner) PublicURL(objectName string) string {
	return p.publicURL + "/" + objectName
}

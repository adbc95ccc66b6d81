// Package blob provides object storage for mirrored icon images.
package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/nightowl-labs/homedash/domain/service"
	"github.com/nightowl-labs/homedash/internal/config"
)

// MinioStore implements service.BlobStore against a MinIO or S3-compatible
// endpoint. Uploads overwrite: the object key is stable per record, so a
// re-mirrored icon replaces the previous copy.
type MinioStore struct {
	client        *minio.Client
	publicBaseURL string
}

// NewMinioStore creates a MinioStore from configuration.
func NewMinioStore(cfg config.BlobConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey(), cfg.SecretKey(), ""),
		Secure: cfg.UseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	publicBaseURL := strings.TrimRight(cfg.PublicBaseURL(), "/")
	if publicBaseURL == "" {
		scheme := "http"
		if cfg.UseSSL() {
			scheme = "https"
		}
		publicBaseURL = scheme + "://" + cfg.Endpoint()
	}

	return &MinioStore{client: client, publicBaseURL: publicBaseURL}, nil
}

// EnsureBuckets creates the given buckets if they do not exist.
func (s *MinioStore) EnsureBuckets(ctx context.Context, buckets ...string) error {
	for _, bucket := range buckets {
		exists, err := s.client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("check bucket %s: %w", bucket, err)
		}
		if exists {
			continue
		}
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucket, err)
		}
	}
	return nil
}

// Upload stores data under bucket/key, replacing any existing object.
func (s *MinioStore) Upload(ctx context.Context, bucket, key, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

// PublicURL returns the durable public URL of an uploaded object.
func (s *MinioStore) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, bucket, key)
}

var _ service.BlobStore = (*MinioStore)(nil)

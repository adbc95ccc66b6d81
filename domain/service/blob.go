package service

import "context"

// BlobStore is durable object storage for mirrored icons. Upload is an
// idempotent overwrite: writing the same key twice replaces the object.
type BlobStore interface {
	Upload(ctx context.Context, bucket, key, contentType string, data []byte) error
	// PublicURL derives the public URL for a stored object. It performs no
	// I/O and does not verify the object exists.
	PublicURL(bucket, key string) string
}

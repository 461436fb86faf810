// Package storage is the narrow object-store surface the upload pipeline
// consumes: signed write URLs and blob reads. The platform behind it is a
// collaborator, not part of the core.
package storage

import (
	"context"
	"time"
)

// SignedUpload is a presigned write grant for one object.
type SignedUpload struct {
	URL       string
	ExpiresAt time.Time
}

// ObjectStore abstracts the blob store.
type ObjectStore interface {
	SignPutURL(ctx context.Context, bucket, key, contentType string, ttl time.Duration) (SignedUpload, error)
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}

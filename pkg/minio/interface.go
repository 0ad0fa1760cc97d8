package minio

import (
	"context"
	"io"
)

// MinIO defines the object storage operations used by the service.
type MinIO interface {
	// Connect verifies the connection is working.
	Connect(ctx context.Context) error

	// HealthCheck verifies the connection is still healthy.
	HealthCheck(ctx context.Context) error

	// Close closes the connection and cleans up resources.
	Close() error

	// EnsureBucket creates the bucket if it does not already exist.
	EnsureBucket(ctx context.Context, bucketName string) error

	// UploadFile uploads an object to MinIO storage.
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)

	// DownloadFile downloads an object from MinIO storage.
	DownloadFile(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)

	// FileExists checks if an object exists.
	FileExists(ctx context.Context, bucketName, objectName string) (bool, error)
}

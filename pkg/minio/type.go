package minio

import (
	"io"
	"time"
)

// Config holds the MinIO connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// FileInfo represents metadata about an object stored in MinIO.
type FileInfo struct {
	BucketName   string    `json:"bucket_name"`
	ObjectName   string    `json:"object_name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"last_modified"`
}

// UploadRequest contains the parameters for uploading an object.
type UploadRequest struct {
	BucketName  string            `json:"bucket_name"`
	ObjectName  string            `json:"object_name"`
	Reader      io.Reader         `json:"-"`
	Size        int64             `json:"size"`
	ContentType string            `json:"content_type"`
	Metadata    map[string]string `json:"metadata"`
}

package minio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
)

// implMinIO is the implementation of the MinIO interface.
type implMinIO struct {
	minioClient *minio.Client
	config      *Config
	mu          sync.RWMutex
	connected   bool
}

func validateConfig(cfg *Config) error {
	if cfg == nil || cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}

// NewMinIO creates a new MinIO client with the provided configuration.
func NewMinIO(cfg *Config) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
		connected:   false,
	}, nil
}

func (m *implMinIO) Connect(ctx context.Context) error {
	// ListBuckets doubles as a connectivity and credential check.
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio: connection check failed: %w", err)
	}

	m.mu.Lock()
	m.connected = true
	m.mu.Unlock()
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()

	if !connected {
		return ErrNotConnected
	}

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio: health check failed: %w", err)
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("minio: bucket check failed: %w", err)
	}
	if exists {
		return nil
	}

	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{
		Region: m.config.Region,
	}); err != nil {
		return fmt.Errorf("minio: make bucket failed: %w", err)
	}
	return nil
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if req == nil || req.BucketName == "" || req.ObjectName == "" || req.Reader == nil {
		return nil, ErrInvalidConfig
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: upload failed: %w", err)
	}

	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ContentType:  contentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
	}, nil
}

func (m *implMinIO) DownloadFile(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	obj, err := m.minioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio: download failed: %w", err)
	}
	return obj, nil
}

func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("minio: stat failed: %w", err)
	}
	return true, nil
}

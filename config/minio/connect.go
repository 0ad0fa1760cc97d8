package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vitalguard-api/config"
	pkgMinio "vitalguard-api/pkg/minio"
)

const (
	// defaultConnectTimeout is the maximum time to wait for initial connection
	defaultConnectTimeout = 5 * time.Second
)

var (
	instance pkgMinio.MinIO
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes and connects to MinIO using a singleton pattern.
// If connection fails, it can be retried by calling Connect() again.
func Connect(ctx context.Context, cfg config.MinIOConfig) (pkgMinio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	// Reset sync.Once if previous initialization failed to allow retry
	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
		defer cancel()

		impl, implErr := pkgMinio.NewMinIO(&pkgMinio.Config{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Region:    cfg.Region,
		})
		if implErr != nil {
			err = fmt.Errorf("failed to create MinIO client: %w", implErr)
			initErr = err
			return
		}

		if connectErr := impl.Connect(connectCtx); connectErr != nil {
			err = fmt.Errorf("failed to connect to MinIO: %w", connectErr)
			initErr = err
			return
		}

		instance = impl
	})

	return instance, err
}

// Disconnect closes the MinIO connection and resets the singleton instance.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.Close(); err != nil {
			return fmt.Errorf("failed to close MinIO connection: %w", err)
		}
		instance = nil
		initErr = nil
		once = sync.Once{}
	}
	return nil
}

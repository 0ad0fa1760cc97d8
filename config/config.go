package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Environment Configuration
	Environment EnvironmentConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig
	MinIO    MinIOConfig

	// WebSocket Configuration
	WebSocket WebSocketConfig

	// Authentication & Security Configuration
	JWT JWTConfig

	// Alerting Configuration
	Alert   AlertConfig
	Discord DiscordConfig
	Archive ArchiveConfig
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level    string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode     string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding string `env:"LOGGER_ENCODING" envDefault:"json"`
}

// EnvironmentConfig is the configuration for environment-aware features
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"production"`
}

// PostgresConfig is the configuration for PostgreSQL
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"vitalguard"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// RedisConfig is the configuration for Redis
// Note: Only standalone mode is supported
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`

	// Connection pool settings
	MaxRetries   int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout  time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
}

// MinIOConfig is the configuration for the archive object store
type MinIOConfig struct {
	Endpoint      string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey     string `env:"MINIO_ACCESS_KEY"`
	SecretKey     string `env:"MINIO_SECRET_KEY"`
	UseSSL        bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region        string `env:"MINIO_REGION" envDefault:"us-east-1"`
	ArchiveBucket string `env:"MINIO_ARCHIVE_BUCKET" envDefault:"alerts-archive"`
}

// WebSocketConfig is the configuration for WebSocket connections
type WebSocketConfig struct {
	PingInterval    time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	PongWait        time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize  int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"4096"`
	ReadBufferSize  int           `env:"WS_READ_BUFFER_SIZE" envDefault:"1024"`
	WriteBufferSize int           `env:"WS_WRITE_BUFFER_SIZE" envDefault:"1024"`
	MaxConnections  int           `env:"WS_MAX_CONNECTIONS" envDefault:"10000"`
}

// JWTConfig is the configuration for the JWT
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// AlertConfig is the configuration for alert evaluation and escalation
type AlertConfig struct {
	ConfirmationWindow time.Duration `env:"ALERT_CONFIRMATION_WINDOW" envDefault:"30s"`
	DedupLookback      time.Duration `env:"ALERT_DEDUP_LOOKBACK" envDefault:"5m"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	DoctorWebhookURL    string `env:"DISCORD_DOCTOR_WEBHOOK_URL"`
	EmergencyWebhookURL string `env:"DISCORD_EMERGENCY_WEBHOOK_URL"`
}

// ArchiveConfig is the configuration for the daily alert archive export
type ArchiveConfig struct {
	Enabled  bool   `env:"ARCHIVE_ENABLED" envDefault:"false"`
	CronSpec string `env:"ARCHIVE_CRON_SPEC" envDefault:"0 0 * * *"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("JWT_SECRET_KEY must be at least 32 characters")
	}
	if cfg.Alert.ConfirmationWindow <= 0 {
		return fmt.Errorf("ALERT_CONFIRMATION_WINDOW must be positive")
	}
	if cfg.Alert.DedupLookback <= 0 {
		return fmt.Errorf("ALERT_DEDUP_LOOKBACK must be positive")
	}
	return nil
}

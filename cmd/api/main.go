package main

import (
	"context"
	"fmt"

	"vitalguard-api/config"
	configMinio "vitalguard-api/config/minio"
	configPostgre "vitalguard-api/config/postgre"
	configRedis "vitalguard-api/config/redis"
	"vitalguard-api/internal/access"
	alertMemory "vitalguard-api/internal/alert/repository/memory"
	alertPostgres "vitalguard-api/internal/alert/repository/postgre"
	alertUsecase "vitalguard-api/internal/alert/usecase"
	"vitalguard-api/internal/archive"
	"vitalguard-api/internal/httpserver"
	identityMemory "vitalguard-api/internal/identity/repository/memory"
	identityUsecase "vitalguard-api/internal/identity/usecase"
	"vitalguard-api/internal/notifier"
	wsRedis "vitalguard-api/internal/ws/delivery/redis"
	wsUsecase "vitalguard-api/internal/ws/usecase"
	"vitalguard-api/pkg/discord"
	"vitalguard-api/pkg/log"
	"vitalguard-api/pkg/scheduler"
	"vitalguard-api/pkg/scope"
)

// @title VitalGuard API
// @description Patient emergency alert decision and escalation service.
// @version 1.0
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()

	// PostgreSQL backs the append-only audit log.
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Redis carries the realtime alert event channel.
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Identity, access guard and token manager.
	identityRepo := identityMemory.New(logger)
	guard := access.New(logger, identityRepo)
	scopeManager := scope.New(cfg.JWT.SecretKey)
	identityUC := identityUsecase.New(logger, identityRepo, guard, scopeManager)

	// Alert engine.
	alertRepo := alertMemory.New(logger, cfg.Alert.DedupLookback)
	auditRepo := alertPostgres.New(logger, postgresDB)

	sched := scheduler.New()
	defer sched.Stop()

	doctorNotifier, err := buildDoctorNotifier(logger, cfg.Discord.DoctorWebhookURL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize doctor notifier: ", err)
		return
	}
	emergencyNotifier, err := buildEmergencyNotifier(logger, cfg.Discord.EmergencyWebhookURL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize emergency notifier: ", err)
		return
	}

	observers := []notifier.Observer{notifier.NewRedisObserver(logger, redisClient)}

	alertUC := alertUsecase.New(
		logger,
		alertRepo,
		auditRepo,
		guard,
		sched,
		doctorNotifier,
		emergencyNotifier,
		observers,
		alertUsecase.Config{ConfirmationWindow: cfg.Alert.ConfirmationWindow},
	)

	// Live feed.
	wsUC := wsUsecase.New(logger, identityRepo, wsUsecase.Config{
		PongWait:   cfg.WebSocket.PongWait,
		PingPeriod: cfg.WebSocket.PingInterval,
		WriteWait:  cfg.WebSocket.WriteWait,
	})
	wsSubscriber := wsRedis.New(redisClient, wsUC, logger)

	// Daily audit archive, optional.
	var archiver archive.Archiver
	if cfg.Archive.Enabled {
		minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
		if err != nil {
			logger.Error(ctx, "Failed to connect to MinIO: ", err)
			return
		}
		defer configMinio.Disconnect()
		logger.Infof(ctx, "MinIO connected to %s", cfg.MinIO.Endpoint)

		archiver = archive.New(logger, auditRepo, minioClient, archive.Config{
			Bucket:   cfg.MinIO.ArchiveBucket,
			CronSpec: cfg.Archive.CronSpec,
		})
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host: cfg.HTTPServer.Host,
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		JWTManager: scopeManager,
		Redis:      redisClient,

		IdentityUC: identityUC,
		AlertUC:    alertUC,

		WSUseCase:    wsUC,
		WSSubscriber: wsSubscriber,
		WSConfig:     cfg.WebSocket,

		Archiver: archiver,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

func buildDoctorNotifier(logger log.Logger, webhookURL string) (notifier.DoctorNotifier, error) {
	if webhookURL == "" {
		return nil, nil
	}
	client, err := discord.New(logger, webhookURL)
	if err != nil {
		return nil, err
	}
	return notifier.NewDoctorNotifier(logger, client), nil
}

func buildEmergencyNotifier(logger log.Logger, webhookURL string) (notifier.EmergencyNotifier, error) {
	if webhookURL == "" {
		return nil, nil
	}
	client, err := discord.New(logger, webhookURL)
	if err != nil {
		return nil, err
	}
	return notifier.NewEmergencyNotifier(logger, client), nil
}

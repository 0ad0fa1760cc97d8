package redis

import (
	"context"
	"sync"

	"vitalguard-api/internal/ws"
	pkgLog "vitalguard-api/pkg/log"
	pkgRedis "vitalguard-api/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// Subscriber bridges the realtime alert channel into the websocket hub.
type Subscriber interface {
	Start() error
	Shutdown(ctx context.Context) error
}

type subscriber struct {
	redis pkgRedis.IRedis
	uc    ws.UseCase
	l     pkgLog.Logger

	pubsub *goredis.PubSub
	wg     sync.WaitGroup
	quit   chan struct{}
}

func New(redis pkgRedis.IRedis, uc ws.UseCase, l pkgLog.Logger) Subscriber {
	return &subscriber{
		redis: redis,
		uc:    uc,
		l:     l,
		quit:  make(chan struct{}),
	}
}

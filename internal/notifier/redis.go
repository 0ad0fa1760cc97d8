package notifier

import (
	"context"
	"encoding/json"

	"vitalguard-api/internal/model"
	pkgLog "vitalguard-api/pkg/log"
	pkgRedis "vitalguard-api/pkg/redis"
)

// AlertEventsChannel is the realtime pub/sub channel carrying alert
// lifecycle events to websocket feeds.
const AlertEventsChannel = "vitalguard:alert_events"

// AlertEventMessage is the wire shape published on AlertEventsChannel.
type AlertEventMessage struct {
	Alert model.Alert      `json:"alert"`
	Event model.AlertEvent `json:"event"`
}

type redisObserver struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
}

// NewRedisObserver returns an Observer that publishes every alert event on
// the realtime channel.
func NewRedisObserver(l pkgLog.Logger, redis pkgRedis.IRedis) Observer {
	return &redisObserver{l: l, redis: redis}
}

func (o *redisObserver) OnAlertEvent(ctx context.Context, alert model.Alert, event model.AlertEvent) {
	payload, err := json.Marshal(AlertEventMessage{Alert: alert, Event: event})
	if err != nil {
		o.l.Errorf(ctx, "internal.notifier.redisObserver.Marshal: %v", err)
		return
	}
	if err := o.redis.Publish(ctx, AlertEventsChannel, payload); err != nil {
		o.l.Warnf(ctx, "internal.notifier.redisObserver.Publish: %v", err)
	}
}

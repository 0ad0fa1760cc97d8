package redis

import (
	"context"
	"fmt"

	"vitalguard-api/internal/notifier"
)

func (s *subscriber) Start() error {
	ctx := context.Background()

	s.pubsub = s.redis.Subscribe(ctx, notifier.AlertEventsChannel)

	// Wait for confirmation that the subscription is created.
	if _, err := s.pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", notifier.AlertEventsChannel, err)
	}

	s.wg.Add(1)
	go s.listen(ctx)

	s.l.Infof(ctx, "alert event subscriber started on %s", notifier.AlertEventsChannel)
	return nil
}

func (s *subscriber) listen(ctx context.Context) {
	defer s.wg.Done()

	ch := s.pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				s.l.Warnf(ctx, "redis pubsub channel closed")
				return
			}
			if err := s.uc.ProcessAlertEvent(ctx, []byte(msg.Payload)); err != nil {
				s.l.Warnf(ctx, "process alert event failed: %v", err)
			}
		case <-s.quit:
			return
		}
	}
}

func (s *subscriber) Shutdown(ctx context.Context) error {
	close(s.quit)
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.l.Errorf(ctx, "failed to close pubsub: %v", err)
		}
	}
	s.wg.Wait()
	s.l.Infof(ctx, "alert event subscriber stopped")
	return nil
}

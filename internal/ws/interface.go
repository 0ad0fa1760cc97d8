package ws

import "context"

// UseCase is the live alert feed: it keeps track of connected dashboards and
// fans alert lifecycle events out to the actors allowed to see them.
type UseCase interface {
	// Run starts the hub loop. Blocks until Shutdown.
	Run()

	// Shutdown closes every connection and stops the hub loop.
	Shutdown(ctx context.Context) error

	// Register attaches an authenticated connection to the hub and starts
	// its read/write pumps.
	Register(ctx context.Context, ip ConnectionInput) error

	// ProcessAlertEvent routes one serialized alert event to the connections
	// entitled to it.
	ProcessAlertEvent(ctx context.Context, payload []byte) error

	// Stats reports active connection and unique user counts.
	Stats(ctx context.Context) (HubStats, error)
}

package repository

import "vitalguard-api/internal/model"

// CreateActorOptions contains options for creating an actor.
type CreateActorOptions struct {
	Actor model.Actor
}

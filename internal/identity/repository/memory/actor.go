package memory

import (
	"context"

	"github.com/google/uuid"

	"vitalguard-api/internal/identity/repository"
	"vitalguard-api/internal/model"
)

func (r *implRepository) CreateActor(ctx context.Context, opts repository.CreateActorOptions) (model.Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actor := opts.Actor
	if _, taken := r.byUsername[actor.Username]; taken {
		return model.Actor{}, repository.ErrAlreadyExists
	}

	if actor.ID == "" {
		actor.ID = uuid.New().String()
	} else if _, exists := r.actors[actor.ID]; exists {
		return model.Actor{}, repository.ErrAlreadyExists
	}

	now := r.now()
	actor.CreatedAt = now
	actor.UpdatedAt = now

	r.actors[actor.ID] = &actor
	r.byUsername[actor.Username] = actor.ID

	return actor, nil
}

func (r *implRepository) GetByID(ctx context.Context, id string) (model.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actors[id]
	if !ok {
		return model.Actor{}, repository.ErrNotFound
	}
	return *a, nil
}

func (r *implRepository) GetByUsername(ctx context.Context, username string) (model.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return model.Actor{}, repository.ErrNotFound
	}
	return *r.actors[id], nil
}

func (r *implRepository) Assign(ctx context.Context, caregiverID, patientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.actors[caregiverID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.actors[patientID]; !ok {
		return repository.ErrNotFound
	}

	if r.assignments[caregiverID] == nil {
		r.assignments[caregiverID] = make(map[string]bool)
	}
	r.assignments[caregiverID][patientID] = true

	return nil
}

func (r *implRepository) Assigned(ctx context.Context, actorID, patientID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.assignments[actorID][patientID], nil
}

func (r *implRepository) RoleOf(ctx context.Context, actorID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actors[actorID]
	if !ok {
		return "", nil
	}
	return a.Role, nil
}

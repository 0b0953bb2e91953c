// Package memory holds the default in-process state repository.
// State kept here is lost on restart.
package memory

import (
	"context"
	"sync"

	"homework_status_bot/internal/domain/homework"
)

type StateRepository struct {
	mu    sync.RWMutex
	state *homework.State
}

func NewStateRepository() *StateRepository {
	return &StateRepository{}
}

func (r *StateRepository) Load(_ context.Context) (homework.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.state == nil {
		return homework.State{}, homework.ErrStateNotFound
	}
	return *r.state, nil
}

func (r *StateRepository) Save(_ context.Context, state homework.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = &state
	return nil
}

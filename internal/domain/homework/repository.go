// internal/domain/homework/repository.go
package homework

import "context"

// StatusSource fetches the raw status payload for homeworks changed since from.
type StatusSource interface {
	FetchStatuses(ctx context.Context, from int64) (any, error)
}

// StateRepository keeps the polling cursor and the last delivered message.
type StateRepository interface {
	// Load returns ErrStateNotFound when nothing has been saved yet.
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
}

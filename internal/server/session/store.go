package session

import "context"

// Store defines how session state is stored and retrieved. Get returns
// (nil, nil) for a missing or expired session; absence is not an error.
type Store interface {
	Create(ctx context.Context, s *State) error
	Get(ctx context.Context, sessionID string) (*State, error)
	Update(ctx context.Context, s *State) error
	Delete(ctx context.Context, sessionID string) error
}

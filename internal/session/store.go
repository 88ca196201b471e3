package session

import (
	"context"

	"homeprice/internal/form"
)

// Store keeps one form state per browser session
type Store interface {
	// Load returns the state saved for id. ok is false when there is none or it expired.
	Load(ctx context.Context, id string) (state *form.State, ok bool, err error)
	// Save replaces the state for id and refreshes its expiry
	Save(ctx context.Context, id string, state *form.State) error
	Close() error
}

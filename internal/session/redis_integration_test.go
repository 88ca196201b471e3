//go:build integration

package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"homeprice/internal/form"
)

func TestRedisStore_Integration(t *testing.T) {
	addr := os.Getenv("HOMEPRICE_SESSION_REDISADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	store := NewRedisStore(addr, time.Minute)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Redis not reachable at %s: %v", addr, err)
	}

	id := uuid.NewString()
	state := form.NewState()
	state.Locations = []string{"Indira Nagar"}
	state.SelectedLocation = "Indira Nagar"

	if err := store.Save(ctx, id, state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := store.Load(ctx, id)
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v", ok, err)
	}
	if got.SelectedLocation != "Indira Nagar" {
		t.Errorf("SelectedLocation = %q, want Indira Nagar", got.SelectedLocation)
	}

	if _, ok, _ := store.Load(ctx, uuid.NewString()); ok {
		t.Error("Load() found a session that was never saved")
	}
}

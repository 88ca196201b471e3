package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"homeprice/internal/form"
	"homeprice/internal/types"
)

func TestMemoryStore_SaveLoad(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	price := types.NewPriceFromLakh(83.2)
	state := form.NewState()
	state.Locations = []string{"Indira Nagar", "Whitefield"}
	state.SelectedLocation = "Indira Nagar"
	state.LastEstimate = &price

	if err := store.Save(ctx, "abc", state); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}

	got, ok, err := store.Load(ctx, "abc")
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v; want saved state", ok, err)
	}
	if diff := cmp.Diff(state, got); diff != "" {
		t.Errorf("loaded state mismatch (-want +got):\n%s", diff)
	}

	// Mutating the loaded copy must not touch the stored one
	got.Locations[0] = "changed"
	again, _, _ := store.Load(ctx, "abc")
	if again.Locations[0] != "Indira Nagar" {
		t.Errorf("stored state was mutated through a loaded copy")
	}
}

func TestMemoryStore_Missing(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	got, ok, err := store.Load(context.Background(), "nope")
	if err != nil || ok || got != nil {
		t.Errorf("Load(missing) = %v, %v, %v; want nil, false, nil", got, ok, err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	if err := store.Save(ctx, "old", form.NewState()); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := store.Load(ctx, "old"); ok {
		t.Error("Load() returned an expired session")
	}

	if err := store.Save(ctx, "a", form.NewState()); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}
	if n := store.Len(); n != 1 {
		t.Errorf("Len() = %d, want 1 after expired entries are swept", n)
	}
}

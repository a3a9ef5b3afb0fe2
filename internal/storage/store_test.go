package storage

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, ok, err := store.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := store.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := store.Get(ctx, "k")
	if err != nil || !ok || got != "v1" {
		t.Errorf("Get(k) = (%q, %v, %v), want (v1, true, nil)", got, ok, err)
	}

	if err := store.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite Set: %v", err)
	}
	got, _, _ = store.Get(ctx, "k")
	if got != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", got)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("key survived Delete")
	}

	// Deleting an absent key is not an error.
	if err := store.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of absent key: %v", err)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Set(ctx, "shared", "v")
				store.Get(ctx, "shared")
			}
		}()
	}
	wg.Wait()

	if got, ok, _ := store.Get(ctx, "shared"); !ok || got != "v" {
		t.Errorf("Get after concurrent writes = (%q, %v)", got, ok)
	}
}

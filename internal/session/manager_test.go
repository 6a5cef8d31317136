// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/preference"
)

// inProcessStores returns every backend that runs without external services.
func inProcessStores(t *testing.T) map[string]Store {
	t.Helper()

	badgerStore, err := OpenBadgerStore("", time.Hour)
	if err != nil {
		t.Fatalf("OpenBadgerStore: %v", err)
	}
	t.Cleanup(func() { _ = badgerStore.Close() })

	return map[string]Store{
		BackendMemory: NewMemoryStore(100, time.Hour),
		BackendBadger: badgerStore,
	}
}

// ========================================
// Lifecycle
// ========================================

func TestManager_Lifecycle(t *testing.T) {
	for name, store := range inProcessStores(t) {
		t.Run(name, func(t *testing.T) {
			m := NewManager(store, zerolog.Nop())
			ctx := context.Background()

			s, err := m.Create(ctx, &preference.Snapshot{Tags: []string{"hiking"}, Style: "adventure"})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if s.ID == "" || s.CreatedAt.IsZero() {
				t.Fatalf("incomplete session: %+v", s)
			}

			got, err := m.Get(ctx, s.ID)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Selection.Style != "adventure" || len(got.Selection.Tags) != 1 {
				t.Errorf("unexpected selection: %+v", got.Selection)
			}

			if err := m.Delete(ctx, s.ID); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := m.Get(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Get after Delete: got %v, want ErrSessionNotFound", err)
			}
			if err := m.Delete(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("second Delete: got %v, want ErrSessionNotFound", err)
			}
		})
	}
}

func TestManager_DeleteUnknown(t *testing.T) {
	for name, store := range inProcessStores(t) {
		t.Run(name, func(t *testing.T) {
			m := NewManager(store, zerolog.Nop())
			if err := m.Delete(context.Background(), "no-such-session"); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("got %v, want ErrSessionNotFound", err)
			}
		})
	}
}

func TestManager_ToggleRoundTrip(t *testing.T) {
	for name, store := range inProcessStores(t) {
		t.Run(name, func(t *testing.T) {
			m := NewManager(store, zerolog.Nop())
			ctx := context.Background()

			s, err := m.Create(ctx, nil)
			if err != nil {
				t.Fatal(err)
			}

			toggle := func(sel *preference.Selection) { sel.ToggleTag("hiking") }
			if _, err := m.Update(ctx, s.ID, toggle); err != nil {
				t.Fatal(err)
			}
			after, err := m.Update(ctx, s.ID, toggle)
			if err != nil {
				t.Fatal(err)
			}

			if len(after.Selection.Tags) != 0 {
				t.Errorf("expected empty tags after two toggles, got %v", after.Selection.Tags)
			}
			if after.Revision != 2 {
				t.Errorf("Revision = %d, want 2", after.Revision)
			}
		})
	}
}

func TestManager_UpdateUnknown(t *testing.T) {
	m := NewManager(NewMemoryStore(10, time.Hour), zerolog.Nop())

	_, err := m.Update(context.Background(), "missing", func(*preference.Selection) {})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}
}

func TestManager_SingleSelectFacets(t *testing.T) {
	m := NewManager(NewMemoryStore(10, time.Hour), zerolog.Nop())
	ctx := context.Background()
	s, _ := m.Create(ctx, nil)

	updated, err := m.Update(ctx, s.ID, func(sel *preference.Selection) {
		sel.SelectStyle("adventure")
		sel.SelectStyle("luxury")
		sel.SelectSeason("winter")
		sel.SelectDuration("week")
	})
	if err != nil {
		t.Fatal(err)
	}
	want := preference.Snapshot{Tags: nil, Style: "luxury", Season: "winter", Duration: "week"}
	got := updated.Selection
	if got.Style != want.Style || got.Season != want.Season || got.Duration != want.Duration || len(got.Tags) != 0 {
		t.Errorf("got %+v, want %+v", got, want)
	}

	reset, err := m.Update(ctx, s.ID, (*preference.Selection).Reset)
	if err != nil {
		t.Fatal(err)
	}
	if !preference.FromSnapshot(reset.Selection).IsEmpty() {
		t.Errorf("expected empty selection after reset, got %+v", reset.Selection)
	}
}

func TestManager_ConcurrentTogglesAreSerialized(t *testing.T) {
	m := NewManager(NewMemoryStore(10, time.Hour), zerolog.Nop())
	ctx := context.Background()
	s, _ := m.Create(ctx, nil)

	tags := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var wg sync.WaitGroup
	for _, tag := range tags {
		wg.Add(1)
		go func(tag string) {
			defer wg.Done()
			if _, err := m.Update(ctx, s.ID, func(sel *preference.Selection) { sel.ToggleTag(tag) }); err != nil {
				t.Error(err)
			}
		}(tag)
	}
	wg.Wait()

	got, err := m.Get(ctx, s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Selection.Tags) != len(tags) {
		t.Errorf("lost updates: have %v", got.Selection.Tags)
	}
	if got.Revision != uint64(len(tags)) {
		t.Errorf("Revision = %d, want %d", got.Revision, len(tags))
	}
}

// ========================================
// Expiry
// ========================================

func TestMemoryStore_ExpiryAndSweep(t *testing.T) {
	store := NewMemoryStore(10, 20*time.Millisecond)
	m := NewManager(store, zerolog.Nop())
	ctx := context.Background()

	s, _ := m.Create(ctx, nil)
	if _, err := m.Create(ctx, nil); err != nil {
		t.Fatal(err)
	}

	time.Sleep(40 * time.Millisecond)

	if _, err := m.Get(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expired session: got %v, want ErrSessionNotFound", err)
	}
	if removed := m.Sweep(); removed != 1 {
		t.Errorf("Sweep() = %d, want 1", removed)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d after sweep", store.Len())
	}
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	store := NewMemoryStore(10, 20*time.Millisecond)
	m := NewManager(store, zerolog.Nop())
	ctx := context.Background()

	s, err := m.Create(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(40 * time.Millisecond)

	if err := m.Delete(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Delete expired: got %v, want ErrSessionNotFound", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, expired entry should still be dropped", store.Len())
	}
}

func TestMemoryStore_Capacity(t *testing.T) {
	store := NewMemoryStore(2, time.Hour)
	m := NewManager(store, zerolog.Nop())
	ctx := context.Background()

	first, _ := m.Create(ctx, nil)
	_, _ = m.Create(ctx, nil)
	_, _ = m.Create(ctx, nil)

	if _, err := m.Get(ctx, first.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("oldest session should be evicted at capacity")
	}
}

func TestBadgerStore_NoSweepNeeded(t *testing.T) {
	store, err := OpenBadgerStore("", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if n := NewManager(store, zerolog.Nop()).Sweep(); n != 0 {
		t.Errorf("Sweep() = %d, want 0 for badger", n)
	}
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := OpenBadgerStore(dir, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewManager(store, zerolog.Nop()).Create(ctx, &preference.Snapshot{Season: "autumn"})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenBadgerStore(dir, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Selection.Season != "autumn" {
		t.Errorf("Season = %q, want autumn", got.Selection.Season)
	}
}

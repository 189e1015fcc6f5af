package out_test

import (
	"context"
	"path/filepath"
	"testing"

	selectionout "timetable/internal/modules/selection/adapter/out"
	"timetable/internal/modules/selection/domain"
	"timetable/internal/platform/kv"
)

func TestKVStateStoreRoundTripOverSQLite(t *testing.T) {
	t.Parallel()
	db, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	store := selectionout.NewKVStateStore(db)
	ctx := context.Background()

	if _, found, err := store.Load(ctx); found || err != nil {
		t.Fatalf("expected empty store, got found=%v err=%v", found, err)
	}
	state := domain.NewState("2025-03-07")
	state.Toggle("s1")
	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, found, err := store.Load(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if got.SelectedDate != "2025-03-07" || !got.IsChecked("s1") {
		t.Fatalf("unexpected state %+v", got)
	}
	raw, _, _ := db.Get(ctx, selectionout.CheckedSessionsKey)
	if raw != `{"s1":true}` {
		t.Fatalf("expected id to bool json, got %s", raw)
	}
}

func TestKVStateStoreIgnoresFalseEntries(t *testing.T) {
	t.Parallel()
	mem := kv.NewMemoryStore()
	ctx := context.Background()
	_ = mem.Set(ctx, selectionout.CheckedSessionsKey, `{"a":true,"b":false}`)
	got, found, err := selectionout.NewKVStateStore(mem).Load(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if !got.IsChecked("a") || got.IsChecked("b") || got.Count() != 1 {
		t.Fatalf("expected only true entries, got %v", got.IDs())
	}
}

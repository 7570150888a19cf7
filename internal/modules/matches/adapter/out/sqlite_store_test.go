package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	matchesout "eventdeck/internal/modules/matches/adapter/out"
	"eventdeck/internal/modules/matches/domain"
)

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), ".eventdeck", "eventdeck.db")
	at := time.Date(2026, 4, 18, 15, 0, 0, 123, time.UTC)

	store, err := matchesout.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	m, _ := domain.New("m-1", "evt-a", at)
	created, err := store.Insert(context.Background(), m)
	if err != nil || !created {
		t.Fatalf("insert: created=%v err=%v", created, err)
	}
	created, err = store.Insert(context.Background(), m)
	if err != nil || created {
		t.Fatalf("duplicate insert must be ignored: created=%v err=%v", created, err)
	}
	if err := store.Update(context.Background(), m.Confirm(at.Add(time.Hour))); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := matchesout.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, ok, err := reopened.Find(context.Background(), "evt-a")
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	if got.ID != "m-1" || got.Status != domain.StatusConfirmed || !got.MatchedAt.Equal(at) {
		t.Fatalf("unexpected match: %+v", got)
	}
	if !got.ConfirmedAt.Equal(at.Add(time.Hour)) {
		t.Fatalf("unexpected confirmed_at: %s", got.ConfirmedAt)
	}

	list, err := reopened.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one match, got %d", len(list))
	}
	removed, err := reopened.Delete(context.Background(), "evt-a")
	if err != nil || !removed {
		t.Fatalf("delete: removed=%v err=%v", removed, err)
	}
	if _, ok, _ := reopened.Find(context.Background(), "evt-a"); ok {
		t.Fatalf("expected match to be gone")
	}
}

func TestMemoryStoreKeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	store := matchesout.NewMemoryStore()
	at := time.Date(2026, 4, 18, 15, 0, 0, 0, time.UTC)
	for _, id := range []string{"c", "a", "b"} {
		m, _ := domain.New("m-"+id, id, at)
		if _, err := store.Insert(context.Background(), m); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if _, err := store.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ := store.List(context.Background())
	if len(list) != 2 || list[0].EventID != "c" || list[1].EventID != "b" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

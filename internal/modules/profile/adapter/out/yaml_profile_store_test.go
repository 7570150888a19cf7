package out_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	profileout "eventdeck/internal/modules/profile/adapter/out"
	"eventdeck/internal/modules/profile/domain"
)

func TestYAMLProfileStoreDefaultsWhenMissing(t *testing.T) {
	t.Parallel()
	got, err := profileout.NewYAMLProfileStore(t.TempDir()).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, domain.Default()) {
		t.Fatalf("expected default profile, got %+v", got)
	}
}

func TestYAMLProfileStoreRoundTrip(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	store := profileout.NewYAMLProfileStore(vault)
	want := domain.Profile{Name: "Sam Rivera", Age: 31, Location: "Evanston, IL", Interests: []string{"Jazz"}}
	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(vault, profileout.ProfileFile))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if len(raw) == 0 {
		t.Fatalf("profile file is empty")
	}
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestYAMLProfileStoreRejectsInvalidFile(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	if err := os.WriteFile(filepath.Join(vault, profileout.ProfileFile), []byte("name: \"\"\nage: 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := profileout.NewYAMLProfileStore(vault).Load(context.Background()); err == nil {
		t.Fatalf("expected validation error")
	}
}

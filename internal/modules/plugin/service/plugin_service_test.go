package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pluginout "eventdeck/internal/modules/plugin/adapter/out"
	"eventdeck/internal/modules/plugin/domain"
	"eventdeck/internal/modules/plugin/dto"
	"eventdeck/internal/modules/plugin/service"
)

func TestDoctorDetectsChecksumMismatch(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	pluginsDir := filepath.Join(tmp, "plugins")
	if err := os.MkdirAll(pluginsDir, 0o755); err != nil {
		t.Fatalf("mkdir plugins: %v", err)
	}
	binPath := filepath.Join(tmp, "dummy-plugin")
	if err := os.WriteFile(binPath, []byte("not-a-real-plugin"), 0o755); err != nil {
		t.Fatalf("write plugin binary: %v", err)
	}
	manifests := []domain.Manifest{{
		Name:         "demo",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       strings.Repeat("0", 64),
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityCatalog},
	}}
	raw, _ := json.Marshal(manifests)
	if err := os.WriteFile(filepath.Join(pluginsDir, "plugins.json"), raw, 0o644); err != nil {
		t.Fatalf("write plugins.json: %v", err)
	}

	svc := service.NewPluginService(pluginout.NewFileManifestStore(tmp, nil), nil, nil)
	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0].ChecksumValid {
		t.Fatalf("expected checksum mismatch")
	}
}

type fakeStore struct {
	manifests []domain.Manifest
}

func (s fakeStore) Load(context.Context) ([]domain.Manifest, error) {
	return s.manifests, nil
}

type fakeHost struct {
	records map[string][]domain.EventRecord
	fail    map[string]error
}

func (fakeHost) CheckLifecycle(context.Context, domain.Manifest) error { return nil }
func (fakeHost) GetMetadata(_ context.Context, m domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: m.Name, Version: m.Version}, nil
}
func (h fakeHost) ListEvents(_ context.Context, m domain.Manifest, _ domain.ListRequest) ([]domain.EventRecord, error) {
	if err := h.fail[m.Name]; err != nil {
		return nil, err
	}
	return h.records[m.Name], nil
}

func TestFetchEventsRejectsDisabledPlugin(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, "demo", false)
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{}, nil)
	_, err := svc.FetchEvents(context.Background(), dto.FetchInput{PluginName: "demo"})
	if !errors.Is(err, domain.ErrPluginDisabled) {
		t.Fatalf("expected ErrPluginDisabled, got %v", err)
	}
}

func TestFetchEventsUnknownPlugin(t *testing.T) {
	t.Parallel()
	svc := service.NewPluginService(fakeStore{}, fakeHost{}, nil)
	_, err := svc.FetchEvents(context.Background(), dto.FetchInput{PluginName: "ghost"})
	if !errors.Is(err, domain.ErrPluginNotFound) {
		t.Fatalf("expected ErrPluginNotFound, got %v", err)
	}
}

func TestFetchEventsDropsInvalidAndAppliesLimit(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	manifest := manifestWithBinary(t, "demo", true)
	host := fakeHost{records: map[string][]domain.EventRecord{"demo": {
		{ID: "a", Name: "A", StartsAt: start},
		{ID: "", Name: "missing id", StartsAt: start},
		{ID: "b", Name: "B", StartsAt: start.Add(time.Hour)},
		{ID: "c", Name: "C", StartsAt: start.Add(2 * time.Hour)},
	}}}
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, host, nil)
	out, err := svc.FetchEvents(context.Background(), dto.FetchInput{PluginName: "demo", Limit: 2})
	if err != nil {
		t.Fatalf("fetch events: %v", err)
	}
	if out.Dropped != 1 {
		t.Fatalf("expected one dropped record, got %d", out.Dropped)
	}
	if len(out.Events) != 2 || out.Events[0].ID != "a" || out.Events[1].ID != "b" {
		t.Fatalf("unexpected events: %+v", out.Events)
	}

	after, err := svc.FetchEvents(context.Background(), dto.FetchInput{PluginName: "demo", After: start})
	if err != nil {
		t.Fatalf("fetch events after: %v", err)
	}
	if len(after.Events) != 2 || after.Events[0].ID != "b" {
		t.Fatalf("unexpected filtered events: %+v", after.Events)
	}
}

func TestFetchAllSkipsFailingPlugins(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	good := manifestWithBinary(t, "good", true)
	bad := manifestWithBinary(t, "bad", true)
	off := manifestWithBinary(t, "off", false)
	host := fakeHost{
		records: map[string][]domain.EventRecord{"good": {{ID: "g1", Name: "G", StartsAt: start}}},
		fail:    map[string]error{"bad": errors.New("boom")},
	}
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{good, bad, off}}, host, nil)
	out, err := svc.FetchAll(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(out) != 1 || out[0].PluginName != "good" || len(out[0].Events) != 1 {
		t.Fatalf("unexpected fetch all output: %+v", out)
	}

	onlyBad := service.NewPluginService(fakeStore{manifests: []domain.Manifest{bad}}, host, nil)
	if _, err := onlyBad.FetchAll(context.Background(), t.TempDir()); err == nil {
		t.Fatalf("expected error when every plugin fails")
	}
}

func manifestWithBinary(t *testing.T, name string, enabled bool) domain.Manifest {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), name+"-bin")
	if err := os.WriteFile(binPath, []byte("binary"), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	hash := sha256.Sum256([]byte("binary"))
	return domain.Manifest{
		Name:         name,
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       hex.EncodeToString(hash[:]),
		Enabled:      enabled,
		Capabilities: []domain.Capability{domain.CapabilityCatalog},
	}
}

package out

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	hclog "github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"eventdeck/internal/modules/plugin/domain"
	pluginout "eventdeck/internal/modules/plugin/port/out"
	"eventdeck/internal/platform/logging"
)

// Manifest files are looked up in this order under <data>/plugins.
var manifestFiles = []string{"plugins.yaml", "plugins.yml", "plugins.json"}

// FileManifestStore reads the plugin registry of a data dir. Only catalog
// providers are returned: capabilities eventdeck cannot host are dropped and
// a manifest left without CapabilityCatalog is skipped.
type FileManifestStore struct {
	basePath string
	dir      string
	log      hclog.Logger
}

func NewFileManifestStore(basePath string, log hclog.Logger) pluginout.ManifestStore {
	return &FileManifestStore{
		basePath: basePath,
		dir:      filepath.Join(basePath, "plugins"),
		log:      logging.OrNull(log).Named("plugins"),
	}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	path, b, err := s.read()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return []domain.Manifest{}, nil
	}
	manifests, err := decodeManifests(path, b)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Manifest, 0, len(manifests))
	seen := map[string]struct{}{}
	for _, m := range manifests {
		if _, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate plugin %q", path, m.Name)
		}
		seen[m.Name] = struct{}{}

		m.Capabilities = s.hostable(m)
		if !m.HasCapability(domain.CapabilityCatalog) {
			s.log.Warn("skipping plugin without catalog capability", "plugin", m.Name, "file", path)
			continue
		}
		if m.Binary != "" && !filepath.IsAbs(m.Binary) {
			m.Binary = filepath.Clean(filepath.Join(s.basePath, m.Binary))
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *FileManifestStore) read() (string, []byte, error) {
	for _, name := range manifestFiles {
		path := filepath.Join(s.dir, name)
		b, err := os.ReadFile(path)
		if err == nil {
			return path, b, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("read plugin manifest store: %w", err)
		}
	}
	return "", nil, nil
}

func decodeManifests(path string, b []byte) ([]domain.Manifest, error) {
	var manifests []domain.Manifest
	if filepath.Ext(path) == ".json" {
		decoder := json.NewDecoder(bytes.NewReader(b))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&manifests); err != nil {
			return nil, fmt.Errorf("decode plugin manifests: %w", err)
		}
		return manifests, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode plugin manifests: %w", err)
	}
	return manifests, nil
}

func (s *FileManifestStore) hostable(m domain.Manifest) []domain.Capability {
	caps := make([]domain.Capability, 0, len(m.Capabilities))
	for _, c := range m.Capabilities {
		if err := c.Validate(); err != nil {
			s.log.Debug("ignoring capability", "plugin", m.Name, "capability", c)
			continue
		}
		caps = append(caps, c)
	}
	return caps
}

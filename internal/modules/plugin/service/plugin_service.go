package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	hclog "github.com/hashicorp/go-hclog"

	"eventdeck/internal/modules/plugin/domain"
	"eventdeck/internal/modules/plugin/dto"
	pluginout "eventdeck/internal/modules/plugin/port/out"
	"eventdeck/internal/platform/logging"
)

type PluginService struct {
	store pluginout.ManifestStore
	host  pluginout.Host
	log   hclog.Logger
}

func NewPluginService(store pluginout.ManifestStore, host pluginout.Host, log hclog.Logger) *PluginService {
	return &PluginService{store: store, host: host, log: logging.OrNull(log).Named("plugin")}
}

func (s *PluginService) List(ctx context.Context) ([]dto.PluginInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PluginInfo, 0, len(manifests))
	for _, m := range manifests {
		caps := make([]string, 0, len(m.Capabilities))
		for _, c := range m.Capabilities {
			caps = append(caps, string(c))
		}
		out = append(out, dto.PluginInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Binary: m.Binary, Capabilities: caps})
	}
	return out, nil
}

func (s *PluginService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *PluginService) FetchEvents(ctx context.Context, input dto.FetchInput) (dto.FetchOutput, error) {
	manifest, err := s.getRunnableManifest(ctx, input.PluginName, domain.CapabilityCatalog)
	if err != nil {
		return dto.FetchOutput{}, err
	}
	return s.fetch(ctx, manifest, domain.ListRequest{VaultPath: input.VaultPath, After: input.After, Limit: input.Limit})
}

func (s *PluginService) FetchAll(ctx context.Context, vaultPath string) ([]dto.FetchOutput, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	var (
		out  []dto.FetchOutput
		errs []error
	)
	for _, m := range manifests {
		if !m.Enabled || !m.HasCapability(domain.CapabilityCatalog) {
			continue
		}
		if err := checksumMatches(m.Binary, m.SHA256); err != nil {
			s.log.Warn("skipping plugin", "plugin", m.Name, "error", err)
			errs = append(errs, err)
			continue
		}
		result, err := s.fetch(ctx, m, domain.ListRequest{VaultPath: vaultPath})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.log.Warn("plugin fetch failed", "plugin", m.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", m.Name, err))
			continue
		}
		out = append(out, result)
	}
	if len(out) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func (s *PluginService) fetch(ctx context.Context, manifest domain.Manifest, req domain.ListRequest) (dto.FetchOutput, error) {
	records, err := s.host.ListEvents(ctx, manifest, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return dto.FetchOutput{}, fmt.Errorf("%w: %s", domain.ErrPluginTimeout, manifest.Name)
		}
		return dto.FetchOutput{}, err
	}
	out := dto.FetchOutput{PluginName: manifest.Name, Events: make([]dto.EventRecord, 0, len(records))}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			s.log.Debug("dropping plugin event", "plugin", manifest.Name, "error", err)
			out.Dropped++
			continue
		}
		if !req.After.IsZero() && !r.StartsAt.After(req.After) {
			continue
		}
		out.Events = append(out.Events, dto.EventRecord{
			ID:           r.ID,
			Name:         r.Name,
			Description:  r.Description,
			StartsAt:     r.StartsAt,
			Address:      r.Address,
			Latitude:     r.Latitude,
			Longitude:    r.Longitude,
			Category:     r.Category,
			Attendees:    r.Attendees,
			MaxAttendees: r.MaxAttendees,
			Price:        r.Price,
			ImageURL:     r.ImageURL,
			Organizer:    r.Organizer,
			Source:       r.Source,
		})
		if req.Limit > 0 && len(out.Events) == req.Limit {
			break
		}
	}
	s.log.Debug("plugin events fetched", "plugin", manifest.Name, "events", len(out.Events), "dropped", out.Dropped)
	return out, nil
}

func (s *PluginService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate plugin name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *PluginService) getRunnableManifest(ctx context.Context, pluginName string, requiredCapability domain.Capability) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	manifest := domain.Manifest{}
	found := false
	for _, item := range manifests {
		if item.Name == pluginName {
			manifest = item
			found = true
			break
		}
	}
	if !found {
		return domain.Manifest{}, fmt.Errorf("%w: %q", domain.ErrPluginNotFound, pluginName)
	}
	if !manifest.Enabled {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrPluginDisabled, pluginName)
	}
	if requiredCapability != "" && !manifest.HasCapability(requiredCapability) {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrCapabilityMissing, requiredCapability)
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	return manifest, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read plugin binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	pluginrpc "eventdeck/internal/modules/plugin/adapter/out/rpc"
	"eventdeck/internal/modules/plugin/domain"
	pluginout "eventdeck/internal/modules/plugin/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

type GRPCHost struct {
	log hclog.Logger
}

// NewGRPCHost launches plugin binaries through go-plugin. Plugin stderr and
// handshake chatter go to log; a nil log discards them.
func NewGRPCHost(log hclog.Logger) pluginout.Host {
	if log == nil {
		log = hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel})
	}
	return &GRPCHost{log: log}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	if _, err := client.GetMetadata(callCtx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	capabilities := make([]domain.Capability, 0, len(meta.Capabilities))
	for _, capability := range meta.Capabilities {
		capabilities = append(capabilities, domain.Capability(capability))
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Capabilities: capabilities}, nil
}

func (h *GRPCHost) ListEvents(ctx context.Context, manifest domain.Manifest, req domain.ListRequest) ([]domain.EventRecord, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	in := &pluginrpc.ListEventsRequest{VaultPath: req.VaultPath, Limit: int32(req.Limit)}
	if !req.After.IsZero() {
		in.AfterUnix = req.After.Unix()
	}
	response, err := client.ListEvents(callCtx, in)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: %s", domain.ErrPluginTimeout, manifest.Name)
		}
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]domain.EventRecord, 0, len(response.Events))
	for _, e := range response.Events {
		record := domain.EventRecord{
			ID:           e.ID,
			Name:         e.Name,
			Description:  e.Description,
			Address:      e.Address,
			Latitude:     e.Latitude,
			Longitude:    e.Longitude,
			Category:     e.Category,
			Attendees:    int(e.Attendees),
			MaxAttendees: int(e.MaxAttendees),
			Price:        e.Price,
			ImageURL:     e.ImageURL,
			Organizer:    e.Organizer,
			Source:       e.Source,
		}
		if e.StartsAt != "" {
			startsAt, err := time.Parse(time.RFC3339, e.StartsAt)
			if err != nil {
				h.log.Debug("unparseable start time from plugin", "plugin", manifest.Name, "event_id", e.ID, "value", e.StartsAt)
			} else {
				record.StartsAt = startsAt
			}
		}
		out = append(out, record)
	}
	return out, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest, startTimeout time.Duration) (pluginrpc.EventSourceClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  pluginrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          pluginrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     startTimeout,
		Logger:           h.log.Named(manifest.Name),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start plugin client: %w", err)
	}
	raw, err := rpcClient.Dispense(pluginrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense plugin: %w", err)
	}
	typed, ok := raw.(pluginrpc.EventSourceClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("plugin rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

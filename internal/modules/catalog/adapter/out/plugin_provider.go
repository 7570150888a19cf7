package out

import (
	"context"

	"eventdeck/internal/modules/catalog/domain"
	catalogout "eventdeck/internal/modules/catalog/port/out"
	plugindto "eventdeck/internal/modules/plugin/dto"
	pluginin "eventdeck/internal/modules/plugin/port/in"
	"eventdeck/internal/platform/geo"
)

// PluginProvider pulls events from every enabled catalog plugin.
type PluginProvider struct {
	plugins   pluginin.Usecase
	vaultPath string
}

func NewPluginProvider(plugins pluginin.Usecase, vaultPath string) catalogout.Provider {
	return &PluginProvider{plugins: plugins, vaultPath: vaultPath}
}

func (p *PluginProvider) Name() string { return "plugins" }

func (p *PluginProvider) Fetch(ctx context.Context) ([]domain.Event, error) {
	results, err := p.plugins.FetchAll(ctx, p.vaultPath)
	if err != nil {
		return nil, err
	}
	var out []domain.Event
	for _, result := range results {
		for _, record := range result.Events {
			out = append(out, recordToEvent(record))
		}
	}
	return out, nil
}

func recordToEvent(r plugindto.EventRecord) domain.Event {
	source := domain.Source(r.Source)
	if source.Validate() != nil || source == domain.SourceUserCreated {
		source = domain.SourceFeed
	}
	return domain.Event{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		StartsAt:    r.StartsAt,
		Location: domain.Location{
			Address:     r.Address,
			Coordinates: geo.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude},
		},
		Category:     r.Category,
		Attendees:    r.Attendees,
		MaxAttendees: r.MaxAttendees,
		Price:        r.Price,
		ImageURL:     r.ImageURL,
		Organizer:    r.Organizer,
		Source:       source,
	}
}

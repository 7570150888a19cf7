package out_test

import (
	"context"
	"testing"
	"time"

	catalogout "eventdeck/internal/modules/catalog/adapter/out"
	"eventdeck/internal/modules/catalog/domain"
	plugindto "eventdeck/internal/modules/plugin/dto"
)

type fakePlugins struct {
	results []plugindto.FetchOutput
}

func (fakePlugins) List(context.Context) ([]plugindto.PluginInfo, error)     { return nil, nil }
func (fakePlugins) Doctor(context.Context) ([]plugindto.DoctorResult, error) { return nil, nil }
func (fakePlugins) FetchEvents(context.Context, plugindto.FetchInput) (plugindto.FetchOutput, error) {
	return plugindto.FetchOutput{}, nil
}
func (f fakePlugins) FetchAll(context.Context, string) ([]plugindto.FetchOutput, error) {
	return f.results, nil
}

func TestPluginProviderMapsRecords(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 1, 19, 0, 0, 0, time.UTC)
	plugins := fakePlugins{results: []plugindto.FetchOutput{{
		PluginName: "samplefeed",
		Events: []plugindto.EventRecord{
			{ID: "p-1", Name: "Jazz on the Lawn", StartsAt: start, Latitude: 41.88, Longitude: -87.62, Source: "meetup"},
			{ID: "p-2", Name: "Mystery Source", StartsAt: start, Source: "somewhere"},
			{ID: "p-3", Name: "Claims User", StartsAt: start, Source: "user-created"},
		},
	}}}
	events, err := catalogout.NewPluginProvider(plugins, t.TempDir()).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected three events, got %d", len(events))
	}
	if events[0].Source != domain.SourceMeetup || events[0].Location.Coordinates.Latitude != 41.88 {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].Source != domain.SourceFeed || events[2].Source != domain.SourceFeed {
		t.Fatalf("expected unknown and user-created sources to map to feed: %+v", events[1:])
	}
}

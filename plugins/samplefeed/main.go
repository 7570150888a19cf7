package main

import (
	"context"
	"time"

	pluginrpc "eventdeck/internal/modules/plugin/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct {
	now func() time.Time
}

func (s *server) GetMetadata(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.Metadata, error) {
	return &pluginrpc.Metadata{
		Name:         "samplefeed",
		Version:      "1.0.0",
		Capabilities: []string{"catalog"},
	}, nil
}

// ListEvents serves a fixed week of events anchored to the next day.
func (s *server) ListEvents(_ context.Context, in *pluginrpc.ListEventsRequest) (*pluginrpc.ListEventsResponse, error) {
	day := s.now().Truncate(24 * time.Hour).Add(24 * time.Hour)
	at := func(offsetDays, hour, minute int) time.Time {
		return day.AddDate(0, 0, offsetDays).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}
	all := []struct {
		event    pluginrpc.Event
		startsAt time.Time
	}{
		{startsAt: at(0, 17, 30), event: pluginrpc.Event{
			ID: "samplefeed-food-trucks", Name: "Food Truck Friday",
			Description: "A dozen trucks, picnic tables and a DJ on the plaza.",
			Address:     "Daley Plaza, Chicago, IL", Latitude: 41.8840, Longitude: -87.6301,
			Category: "food", Attendees: 42, Organizer: "Loop Eats", Source: "eventbrite",
		}},
		{startsAt: at(1, 19, 0), event: pluginrpc.Event{
			ID: "samplefeed-jazz", Name: "Jazz on the Lawn",
			Description: "Bring a blanket. Local quartets play until sunset.",
			Address:     "Pritzker Pavilion, Chicago, IL", Latitude: 41.8826, Longitude: -87.6219,
			Category: "music", Attendees: 120, MaxAttendees: 400, Organizer: "Grant Park Sounds", Source: "meetup",
		}},
		{startsAt: at(3, 18, 0), event: pluginrpc.Event{
			ID: "samplefeed-pitch-night", Name: "Startup Pitch Night",
			Description: "Five founders, five minutes each, then drinks.",
			Address:     "1871, 222 W Merchandise Mart Plaza, Chicago, IL", Latitude: 41.8885, Longitude: -87.6354,
			Category: "networking", Attendees: 30, MaxAttendees: 60, Price: 10, Organizer: "Chicago Founders", Source: "meetup",
		}},
	}
	out := &pluginrpc.ListEventsResponse{}
	for _, item := range all {
		if in.AfterUnix > 0 && item.startsAt.Unix() <= in.AfterUnix {
			continue
		}
		event := item.event
		event.StartsAt = item.startsAt.Format(time.RFC3339)
		out.Events = append(out.Events, event)
		if in.Limit > 0 && int32(len(out.Events)) == in.Limit {
			break
		}
	}
	return out, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: pluginrpc.HandshakeConfig,
		Plugins:         pluginrpc.PluginMap(&server{now: time.Now}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}

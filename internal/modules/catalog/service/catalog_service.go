package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"eventdeck/internal/modules/catalog/domain"
	catalogout "eventdeck/internal/modules/catalog/port/out"
	"eventdeck/internal/platform/clock"
	apperrors "eventdeck/internal/platform/errors"
	"eventdeck/internal/platform/geo"
	"eventdeck/internal/platform/id"
	"eventdeck/internal/platform/logging"
)

type CatalogService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     catalogout.EventStore
	providers []catalogout.Provider
	flyers    catalogout.FlyerReader
	log       hclog.Logger

	mu   sync.Mutex
	last *domain.Catalog
}

func NewCatalogService(clock clock.Clock, idGen id.Generator, store catalogout.EventStore, flyers catalogout.FlyerReader, log hclog.Logger, providers ...catalogout.Provider) *CatalogService {
	return &CatalogService{
		clock:     clock,
		idGen:     idGen,
		store:     store,
		providers: providers,
		flyers:    flyers,
		log:       logging.OrNull(log).Named("catalog"),
	}
}

// Load asks every provider in order and merges the results. A failing
// provider is skipped and reported by name; it never fails the load. The
// first event seen for an id wins.
func (s *CatalogService) Load(ctx context.Context) (domain.Catalog, []string, error) {
	var (
		events  []domain.Event
		skipped []string
		seen    = map[string]struct{}{}
	)
	for _, p := range s.providers {
		fetched, err := p.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return domain.Catalog{}, nil, ctx.Err()
			}
			s.log.Warn("provider unavailable", "provider", p.Name(), "error", err)
			skipped = append(skipped, p.Name())
			continue
		}
		for _, e := range fetched {
			if err := e.Validate(); err != nil {
				s.log.Warn("dropping invalid event", "provider", p.Name(), "event_id", e.ID, "error", err)
				continue
			}
			if _, dup := seen[e.ID]; dup {
				s.log.Debug("dropping duplicate event", "provider", p.Name(), "event_id", e.ID)
				continue
			}
			seen[e.ID] = struct{}{}
			events = append(events, e)
		}
	}
	catalog, err := domain.NewCatalog(events)
	if err != nil {
		return domain.Catalog{}, nil, err
	}
	s.log.Info("catalog loaded", "events", catalog.Len(), "skipped", len(skipped))

	s.mu.Lock()
	s.last = &catalog
	s.mu.Unlock()
	return catalog, skipped, nil
}

// GetEvent resolves id against the most recently loaded catalog, loading one
// first if needed.
func (s *CatalogService) GetEvent(ctx context.Context, eventID string) (domain.Event, error) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last == nil {
		catalog, _, err := s.Load(ctx)
		if err != nil {
			return domain.Event{}, err
		}
		last = &catalog
	}
	event, ok := last.Find(eventID)
	if !ok {
		return domain.Event{}, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	return event, nil
}

func (s *CatalogService) Create(ctx context.Context, event domain.Event) (domain.Event, string, error) {
	if s.store == nil {
		return domain.Event{}, "", fmt.Errorf("event store is not configured")
	}
	event.ID = s.idGen.New()
	event.Source = domain.SourceUserCreated
	event.Name = strings.TrimSpace(event.Name)
	if event.StartsAt.IsZero() {
		return domain.Event{}, "", fmt.Errorf("%w: start time is required", apperrors.ErrInvalidInput)
	}
	if err := event.Validate(); err != nil {
		return domain.Event{}, "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	path, err := s.store.Save(ctx, event)
	if err != nil {
		return domain.Event{}, "", err
	}
	s.mu.Lock()
	s.last = nil
	s.mu.Unlock()
	s.log.Info("event created", "event_id", event.ID, "note", path)
	return event, path, nil
}

func (s *CatalogService) ImportFlyer(ctx context.Context, path string) (domain.Event, string, error) {
	if s.flyers == nil {
		return domain.Event{}, "", fmt.Errorf("flyer reader is not configured")
	}
	if strings.TrimSpace(path) == "" {
		return domain.Event{}, "", fmt.Errorf("%w: flyer path is required", apperrors.ErrInvalidInput)
	}
	lines, err := s.flyers.ReadLines(ctx, path)
	if err != nil {
		return domain.Event{}, "", err
	}
	flyer := domain.ParseFlyer(lines)
	if flyer.Name == "" {
		return domain.Event{}, "", fmt.Errorf("%w: flyer has no event name", apperrors.ErrInvalidInput)
	}
	startsAt, ok := flyer.StartsAt(s.clock.Now().Location())
	if !ok {
		return domain.Event{}, "", fmt.Errorf("%w: flyer has no recognisable date", apperrors.ErrInvalidInput)
	}
	return s.Create(ctx, domain.Event{
		Name:         flyer.Name,
		Description:  flyer.Description,
		StartsAt:     startsAt,
		Location:     domain.Location{Address: flyer.Address, Coordinates: geo.Coordinates{}},
		Category:     flyer.Category,
		MaxAttendees: flyer.MaxAttendees,
		Price:        flyer.Price,
		Organizer:    flyer.Organizer,
	})
}

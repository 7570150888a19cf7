package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"eventdeck/internal/modules/catalog/domain"
	catalogout "eventdeck/internal/modules/catalog/port/out"
	"eventdeck/internal/platform/geo"
	"eventdeck/internal/platform/markdown"
	"eventdeck/internal/platform/slug"
)

// VaultEventStore keeps user-created events as markdown notes under
// <vault>/events. It doubles as a catalog provider.
type VaultEventStore struct {
	dir string
}

type eventNote struct {
	SchemaVersion int             `yaml:"schema_version"`
	ID            string          `yaml:"id"`
	Name          string          `yaml:"name"`
	StartsAt      string          `yaml:"starts_at"`
	Address       string          `yaml:"address,omitempty"`
	Coordinates   geo.Coordinates `yaml:"coordinates"`
	Category      string          `yaml:"category,omitempty"`
	Attendees     int             `yaml:"attendees"`
	MaxAttendees  int             `yaml:"max_attendees,omitempty"`
	Price         float64         `yaml:"price,omitempty"`
	ImageURL      string          `yaml:"image_url,omitempty"`
	Organizer     string          `yaml:"organizer,omitempty"`
	Source        string          `yaml:"source"`
}

func NewVaultEventStore(vaultPath string) *VaultEventStore {
	return &VaultEventStore{dir: filepath.Join(vaultPath, "events")}
}

var (
	_ catalogout.EventStore = (*VaultEventStore)(nil)
	_ catalogout.Provider   = (*VaultEventStore)(nil)
)

func (s *VaultEventStore) Name() string { return "vault" }

func (s *VaultEventStore) Fetch(ctx context.Context) ([]domain.Event, error) {
	return s.List(ctx)
}

func (s *VaultEventStore) Save(_ context.Context, event domain.Event) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create events dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", event.StartsAt.Format("2006-01-02"), slug.Make(event.Name))
	path := filepath.Join(s.dir, name)
	note := eventNote{
		SchemaVersion: domain.SchemaVersion,
		ID:            event.ID,
		Name:          event.Name,
		StartsAt:      event.StartsAt.Format(time.RFC3339),
		Address:       event.Location.Address,
		Coordinates:   event.Location.Coordinates,
		Category:      event.Category,
		Attendees:     event.Attendees,
		MaxAttendees:  event.MaxAttendees,
		Price:         event.Price,
		ImageURL:      event.ImageURL,
		Organizer:     event.Organizer,
		Source:        string(event.Source),
	}
	body := fmt.Sprintf("# %s\n\n%s\n", event.Name, strings.TrimSpace(event.Description))
	rendered, err := markdown.Render(note, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write event note: %w", err)
	}
	return path, nil
}

// List returns events ordered by note file name, which sorts by start date.
func (s *VaultEventStore) List(_ context.Context) ([]domain.Event, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("glob event notes: %w", err)
	}
	sort.Strings(matches)

	out := make([]domain.Event, 0, len(matches))
	for _, path := range matches {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		note := eventNote{}
		body, err := markdown.Decode(string(content), &note)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		startsAt, err := time.Parse(time.RFC3339, note.StartsAt)
		if err != nil {
			return nil, fmt.Errorf("decode starts_at in %s: %w", path, err)
		}
		out = append(out, domain.Event{
			ID:           note.ID,
			Name:         note.Name,
			Description:  noteDescription(body),
			StartsAt:     startsAt,
			Location:     domain.Location{Address: note.Address, Coordinates: note.Coordinates},
			Category:     note.Category,
			Attendees:    note.Attendees,
			MaxAttendees: note.MaxAttendees,
			Price:        note.Price,
			ImageURL:     note.ImageURL,
			Organizer:    note.Organizer,
			Source:       domain.Source(note.Source),
		})
	}
	return out, nil
}

// noteDescription drops the leading "# title" heading written by Save.
func noteDescription(body string) string {
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, "# ") {
		if _, rest, ok := strings.Cut(body, "\n"); ok {
			body = rest
		} else {
			body = ""
		}
	}
	return strings.TrimSpace(body)
}

package out

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"eventdeck/internal/modules/catalog/domain"
	catalogout "eventdeck/internal/modules/catalog/port/out"
	"eventdeck/internal/platform/geo"
)

// FeedProvider turns RSS/Atom event feeds into catalog events. Items carry
// their start time as the publication date; items without one are skipped.
type FeedProvider struct {
	Client *http.Client
	Feeds  []string
}

func NewFeedProvider(feeds []string) catalogout.Provider {
	return &FeedProvider{
		Client: &http.Client{Timeout: 15 * time.Second},
		Feeds:  feeds,
	}
}

func (p *FeedProvider) Name() string { return "feeds" }

// Fetch fails only when every configured feed fails.
func (p *FeedProvider) Fetch(ctx context.Context) ([]domain.Event, error) {
	parser := gofeed.NewParser()
	var (
		out  []domain.Event
		errs []error
	)
	for _, feedURL := range p.Feeds {
		feed, err := p.fetchOne(ctx, parser, feedURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", feedURL, err))
			continue
		}
		for _, item := range feed.Items {
			if event, ok := itemToEvent(feed, item); ok {
				out = append(out, event)
			}
		}
	}
	if len(errs) > 0 && len(errs) == len(p.Feeds) {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func (p *FeedProvider) fetchOne(ctx context.Context, parser *gofeed.Parser, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed: status %d", resp.StatusCode)
	}
	feed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

var plainText = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// cleanDescription reduces an HTML item description to a single line of text.
func cleanDescription(raw string) string {
	return strings.Join(strings.Fields(html.UnescapeString(plainText.Sanitize(raw))), " ")
}

func itemToEvent(feed *gofeed.Feed, item *gofeed.Item) (domain.Event, bool) {
	var startsAt time.Time
	switch {
	case item.PublishedParsed != nil:
		startsAt = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		startsAt = *item.UpdatedParsed
	default:
		return domain.Event{}, false
	}
	key := item.GUID
	if key == "" {
		key = item.Link
	}
	if key == "" {
		key = item.Title + startsAt.String()
	}
	sum := sha1.Sum([]byte(key))

	organizer := strings.TrimSpace(feed.Title)
	if item.Author != nil && strings.TrimSpace(item.Author.Name) != "" {
		organizer = strings.TrimSpace(item.Author.Name)
	}
	category := ""
	if len(item.Categories) > 0 {
		category = strings.TrimSpace(item.Categories[0])
	}
	image := ""
	if item.Image != nil {
		image = item.Image.URL
	}
	event := domain.Event{
		ID:          "feed-" + hex.EncodeToString(sum[:6]),
		Name:        strings.TrimSpace(item.Title),
		Description: cleanDescription(item.Description),
		StartsAt:    startsAt,
		Location:    domain.Location{Coordinates: georssPoint(item)},
		Category:    category,
		ImageURL:    image,
		Organizer:   organizer,
		Source:      sourceForLink(item.Link),
	}
	if addr, ok := item.Custom["location"]; ok {
		event.Location.Address = strings.TrimSpace(addr)
	}
	return event, true
}

// georssPoint reads <georss:point>lat lon</georss:point> when present.
func georssPoint(item *gofeed.Item) geo.Coordinates {
	ns, ok := item.Extensions["georss"]
	if !ok {
		return geo.Coordinates{}
	}
	points := ns["point"]
	if len(points) == 0 {
		return geo.Coordinates{}
	}
	fields := strings.Fields(points[0].Value)
	if len(fields) != 2 {
		return geo.Coordinates{}
	}
	lat, errLat := strconv.ParseFloat(fields[0], 64)
	lon, errLon := strconv.ParseFloat(fields[1], 64)
	if errLat != nil || errLon != nil {
		return geo.Coordinates{}
	}
	c := geo.Coordinates{Latitude: lat, Longitude: lon}
	if c.Validate() != nil {
		return geo.Coordinates{}
	}
	return c
}

func sourceForLink(link string) domain.Source {
	u, err := url.Parse(link)
	if err != nil {
		return domain.SourceFeed
	}
	host := strings.ToLower(u.Hostname())
	switch {
	case host == "meetup.com" || strings.HasSuffix(host, ".meetup.com"):
		return domain.SourceMeetup
	case strings.Contains(host, "eventbrite."):
		return domain.SourceEventbrite
	default:
		return domain.SourceFeed
	}
}

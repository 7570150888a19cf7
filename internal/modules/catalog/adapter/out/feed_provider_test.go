package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogout "eventdeck/internal/modules/catalog/adapter/out"
	"eventdeck/internal/modules/catalog/domain"
)

const eventFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:georss="http://www.georss.org/georss">
  <channel>
    <title>Chicago Runners</title>
    <link>https://www.meetup.com/chicago-runners/</link>
    <item>
      <title>Lakefront 5K</title>
      <link>https://www.meetup.com/chicago-runners/events/1001/</link>
      <guid>meetup-1001</guid>
      <description>&lt;p&gt;Easy pace along the lake.&lt;/p&gt;</description>
      <category>sports</category>
      <pubDate>Sat, 06 Jun 2026 07:00:00 -0500</pubDate>
      <georss:point>41.8916 -87.6079</georss:point>
    </item>
    <item>
      <title>Undated teaser</title>
      <link>https://example.org/teaser</link>
    </item>
  </channel>
</rss>`

func TestFeedProviderParsesItems(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(eventFeed))
	}))
	defer server.Close()

	provider := catalogout.NewFeedProvider([]string{server.URL})
	events, err := provider.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected undated item to be skipped, got %d events", len(events))
	}
	e := events[0]
	if e.Name != "Lakefront 5K" || e.Description != "Easy pace along the lake." {
		t.Fatalf("unexpected event text: %+v", e)
	}
	if e.Source != domain.SourceMeetup || e.Category != "sports" || e.Organizer != "Chicago Runners" {
		t.Fatalf("unexpected event attributes: %+v", e)
	}
	if e.Location.Coordinates.Latitude != 41.8916 || e.Location.Coordinates.Longitude != -87.6079 {
		t.Fatalf("unexpected coordinates: %+v", e.Location.Coordinates)
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("feed event invalid: %v", err)
	}

	again, err := provider.Fetch(context.Background())
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if again[0].ID != e.ID {
		t.Fatalf("expected stable id, got %s then %s", e.ID, again[0].ID)
	}
}

func TestFeedProviderFailsWhenEveryFeedFails(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	if _, err := catalogout.NewFeedProvider([]string{server.URL}).Fetch(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFeedProviderToleratesPartialFailure(t *testing.T) {
	t.Parallel()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(eventFeed))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer bad.Close()

	events, err := catalogout.NewFeedProvider([]string{bad.URL, good.URL}).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
}

const markupFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Pilsen Nights</title>
    <item>
      <title>Taco Crawl</title>
      <guid>pilsen-7</guid>
      <description><![CDATA[<p title="a > b">Tacos &amp; tunes</p><p>Bring&nbsp;friends</p><script>alert(1)</script>]]></description>
      <pubDate>Fri, 12 Jun 2026 18:00:00 -0500</pubDate>
    </item>
  </channel>
</rss>`

func TestFeedProviderReducesDescriptionToText(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(markupFeed))
	}))
	defer server.Close()

	events, err := catalogout.NewFeedProvider([]string{server.URL}).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	if got := events[0].Description; got != "Tacos & tunes Bring friends" {
		t.Fatalf("unexpected description: %q", got)
	}
}

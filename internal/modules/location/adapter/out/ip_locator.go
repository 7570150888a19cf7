package out

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"eventdeck/internal/modules/location/domain"
	locationout "eventdeck/internal/modules/location/port/out"
	"eventdeck/internal/platform/geo"
)

const DefaultLookupURL = "http://ip-api.com/json/?fields=status,message,lat,lon,city,region"

// IPLocator estimates position from the public IP through an ip-api style
// JSON endpoint.
type IPLocator struct {
	Client *http.Client
	URL    string
}

func NewIPLocator(url string, client *http.Client) locationout.Locator {
	if url == "" {
		url = DefaultLookupURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &IPLocator{Client: client, URL: url}
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Region  string  `json:"region"`
}

func (l *IPLocator) Locate(ctx context.Context) (domain.Fix, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return domain.Fix{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := l.Client.Do(req)
	if err != nil {
		return domain.Fix{}, fmt.Errorf("ip lookup: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.Fix{}, fmt.Errorf("ip lookup: status %d", resp.StatusCode)
	}
	var body ipLookupResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err != nil {
		return domain.Fix{}, fmt.Errorf("decode ip lookup: %w", err)
	}
	if body.Status != "" && body.Status != "success" {
		return domain.Fix{}, fmt.Errorf("ip lookup failed: %s", body.Message)
	}
	fix := domain.Fix{
		Coordinates: geo.Coordinates{Latitude: body.Lat, Longitude: body.Lon},
		Label:       placeLabel(body.City, body.Region),
		Source:      "ip",
	}
	if err := fix.Validate(); err != nil {
		return domain.Fix{}, fmt.Errorf("ip lookup: %w", err)
	}
	return fix, nil
}

func placeLabel(city, region string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{city, region} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

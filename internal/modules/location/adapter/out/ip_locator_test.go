package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	locationout "eventdeck/internal/modules/location/adapter/out"
)

func TestIPLocatorParsesResponse(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","lat":41.8781,"lon":-87.6298,"city":"Chicago","region":"IL"}`))
	}))
	defer server.Close()

	fix, err := locationout.NewIPLocator(server.URL, server.Client()).Locate(context.Background())
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if fix.Label != "Chicago, IL" || fix.Source != "ip" || fix.Coordinates.Latitude != 41.8781 {
		t.Fatalf("unexpected fix: %+v", fix)
	}
}

func TestIPLocatorReportsFailureStatus(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"reserved range"}`))
	}))
	defer server.Close()

	if _, err := locationout.NewIPLocator(server.URL, server.Client()).Locate(context.Background()); err == nil {
		t.Fatalf("expected failure")
	}
}

func TestIPLocatorHTTPError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := locationout.NewIPLocator(server.URL, server.Client()).Locate(context.Background()); err == nil {
		t.Fatalf("expected failure")
	}
}

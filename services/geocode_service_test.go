package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newGeocodeServer(t *testing.T, known map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if payload, ok := known[query]; ok {
			fmt.Fprint(w, payload)
			return
		}
		fmt.Fprint(w, "[]")
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGeocodeResolvesAddress(t *testing.T) {
	server := newGeocodeServer(t, map[string]string{
		"1600 Pennsylvania Ave": `[{"lat":"38.8977","lon":"-77.0365"}]`,
	})

	svc := NewGeocodeService(server.URL, nil)
	coords, err := svc.Geocode(context.Background(), "1600 Pennsylvania Ave")
	if err != nil {
		t.Fatalf("Geocode returned error: %v", err)
	}
	if coords.Lat != 38.8977 || coords.Lng != -77.0365 {
		t.Fatalf("coords = %+v, want 38.8977/-77.0365", coords)
	}
}

func TestGeocodeNoMatchIsNotFound(t *testing.T) {
	server := newGeocodeServer(t, nil)

	svc := NewGeocodeService(server.URL, nil)
	if _, err := svc.Geocode(context.Background(), "nowhere at all"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGeocodeRejectsEmptyAddress(t *testing.T) {
	svc := NewGeocodeService("http://unused", nil)

	_, err := svc.Geocode(context.Background(), "")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGeocodeAllOmitsFailedPoints(t *testing.T) {
	server := newGeocodeServer(t, map[string]string{
		"site a": `[{"lat":"18.0735","lon":"-15.9582"}]`,
		"site c": `[{"lat":"18.0833","lon":"-15.9667"}]`,
	})

	svc := NewGeocodeService(server.URL, nil)
	points := svc.GeocodeAll(context.Background(), []string{"site a", "site b", "site c"})

	if len(points) != 2 {
		t.Fatalf("got %d points, want 2 (failed lookup omitted)", len(points))
	}
	for _, p := range points {
		if p.Address == "site b" {
			t.Fatal("unresolvable address should have been omitted")
		}
	}
}

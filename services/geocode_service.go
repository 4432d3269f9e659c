package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Coordinates is one plottable point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodedPoint pairs an input address with its resolved coordinates.
type GeocodedPoint struct {
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

// GeocodeService resolves free-text addresses to coordinates through a
// Nominatim-style HTTP endpoint, with an optional Redis cache in front.
// A cache outage degrades to direct lookups; a failed lookup simply
// omits that point from the map.
type GeocodeService struct {
	client   *http.Client
	baseURL  string
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewGeocodeService(baseURL string, cache *redis.Client) *GeocodeService {
	return &GeocodeService{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  baseURL,
		cache:    cache,
		cacheTTL: 24 * time.Hour,
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a single address. ErrNotFound means the provider
// returned no match.
func (s *GeocodeService) Geocode(ctx context.Context, address string) (*Coordinates, error) {
	if address == "" {
		return nil, NewValidationError("address is required")
	}

	cacheKey := "geocode:" + address
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var coords Coordinates
			if json.Unmarshal([]byte(cached), &coords) == nil {
				return &coords, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", s.baseURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "internal-portal-api")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode lookup returned %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("bad latitude %q", results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("bad longitude %q", results[0].Lon)
	}

	coords := Coordinates{Lat: lat, Lng: lng}
	if s.cache != nil {
		if payload, err := json.Marshal(coords); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				log.Printf("geocode cache set failed for %q: %v", address, err)
			}
		}
	}
	return &coords, nil
}

// GeocodeAll resolves a batch of addresses concurrently. Failures are
// logged per address and that point is omitted from the result.
func (s *GeocodeService) GeocodeAll(ctx context.Context, addresses []string) []GeocodedPoint {
	results := make([]*GeocodedPoint, len(addresses))

	var wg sync.WaitGroup
	for i, address := range addresses {
		wg.Add(1)
		go func(i int, address string) {
			defer wg.Done()
			coords, err := s.Geocode(ctx, address)
			if err != nil {
				log.Printf("geocode failed for %q: %v", address, err)
				return
			}
			results[i] = &GeocodedPoint{Address: address, Coordinates: *coords}
		}(i, address)
	}
	wg.Wait()

	points := make([]GeocodedPoint, 0, len(addresses))
	for _, p := range results {
		if p != nil {
			points = append(points, *p)
		}
	}
	return points
}

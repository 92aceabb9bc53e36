package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const geocodeKeyPrefix = "geocode:"

// Coordinates is the cached answer of an address lookup.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// GeocodeCache memoises geocoder answers so repeated batches for the same
// address do not hit the rate-limited upstream service.
type GeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGeocodeCache(client *redis.Client, ttl time.Duration) *GeocodeCache {
	return &GeocodeCache{client: client, ttl: ttl}
}

func geocodeKey(query string) string {
	return geocodeKeyPrefix + strings.ToLower(strings.TrimSpace(query))
}

// Get returns ok=false on a cache miss.
func (c *GeocodeCache) Get(ctx context.Context, query string) (lat, lon float64, ok bool, err error) {
	raw, err := c.client.Get(ctx, geocodeKey(query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, fmt.Errorf("reading geocode cache: %w", err)
	}

	var coords Coordinates
	if err := json.Unmarshal(raw, &coords); err != nil {
		return 0, 0, false, fmt.Errorf("decoding cached coordinates: %w", err)
	}
	return coords.Latitude, coords.Longitude, true, nil
}

func (c *GeocodeCache) Set(ctx context.Context, query string, lat, lon float64) error {
	raw, err := json.Marshal(Coordinates{Latitude: lat, Longitude: lon})
	if err != nil {
		return fmt.Errorf("encoding coordinates: %w", err)
	}
	if err := c.client.Set(ctx, geocodeKey(query), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing geocode cache: %w", err)
	}
	return nil
}

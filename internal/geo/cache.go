package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"garageFront/internal/models"
)

// LocationCache keeps resolved locations in Redis, standing in for the
// browser session storage the web client used.
type LocationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewLocationCache creates a new cache. A zero ttl defaults to 30 minutes,
// roughly a browsing session.
func NewLocationCache(rdb *redis.Client, ttl time.Duration) *LocationCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &LocationCache{rdb: rdb, ttl: ttl}
}

func locationKey(lat, lon float64) string {
	return fmt.Sprintf("location:%.4f:%.4f", lat, lon)
}

// Get returns the cached resolution for coordinates, or ok=false on a miss.
func (c *LocationCache) Get(ctx context.Context, lat, lon float64) (models.Location, bool) {
	if c.rdb == nil {
		return models.Location{}, false
	}
	raw, err := c.rdb.Get(ctx, locationKey(lat, lon)).Result()
	if err != nil {
		return models.Location{}, false
	}
	var loc models.Location
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return models.Location{}, false
	}
	return loc, true
}

// Set stores a resolved location. Failures are ignored; the cache is an
// optimization, not a source of truth.
func (c *LocationCache) Set(ctx context.Context, loc models.Location) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(loc)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, locationKey(loc.Latitude, loc.Longitude), raw, c.ttl)
}

// SetSelectedCity remembers a subscriber's explicit city pick.
func (c *LocationCache) SetSelectedCity(ctx context.Context, subscriberID int, city string) {
	if c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, fmt.Sprintf("selected_city:%d", subscriberID), city, c.ttl)
}

// SelectedCity returns the remembered city pick, or "" when absent.
func (c *LocationCache) SelectedCity(ctx context.Context, subscriberID int) string {
	if c.rdb == nil {
		return ""
	}
	city, err := c.rdb.Get(ctx, fmt.Sprintf("selected_city:%d", subscriberID)).Result()
	if err != nil {
		return ""
	}
	return city
}

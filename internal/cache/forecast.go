package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bangtaeuk/whereorwhen/internal/analyzer"
)

const (
	forecastKeyPrefix = "forecast:"
	forecastTTL       = 24 * time.Hour
)

// ForecastStore keeps per-city forecast snapshots in Redis. Staleness
// is judged by the snapshot's own fetch timestamp, not by key expiry;
// the TTL only garbage-collects cities that stop receiving updates.
type ForecastStore struct {
	redis *redis.Client
}

// NewForecastStore creates a new forecast store
func NewForecastStore(redisClient *redis.Client) *ForecastStore {
	return &ForecastStore{redis: redisClient}
}

// Get retrieves the cached snapshot for a city. A missing key returns
// nil without error.
func (fs *ForecastStore) Get(ctx context.Context, cityID string) (*analyzer.ForecastSnapshot, error) {
	key := forecastKeyPrefix + cityID

	data, err := fs.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast from Redis: %w", err)
	}

	var snap analyzer.ForecastSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast: %w", err)
	}

	return &snap, nil
}

// Set stores a snapshot for its city
func (fs *ForecastStore) Set(ctx context.Context, snap *analyzer.ForecastSnapshot) error {
	key := forecastKeyPrefix + snap.CityID

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast: %w", err)
	}

	if err := fs.redis.Set(ctx, key, data, forecastTTL).Err(); err != nil {
		return fmt.Errorf("failed to set forecast in Redis: %w", err)
	}

	return nil
}

// AllForecasts returns every cached snapshot keyed by city id.
// Unreadable entries are skipped rather than failing the whole fetch.
func (fs *ForecastStore) AllForecasts(ctx context.Context) (map[string]*analyzer.ForecastSnapshot, error) {
	keys, err := fs.redis.Keys(ctx, forecastKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	snapshots := make(map[string]*analyzer.ForecastSnapshot)
	for _, key := range keys {
		data, err := fs.redis.Get(ctx, key).Result()
		if err != nil {
			continue
		}

		var snap analyzer.ForecastSnapshot
		if err := json.Unmarshal([]byte(data), &snap); err != nil {
			continue
		}

		cityID := strings.TrimPrefix(key, forecastKeyPrefix)
		snapshots[cityID] = &snap
	}

	return snapshots, nil
}

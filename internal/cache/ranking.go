package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bangtaeuk/whereorwhen/internal/recommend"
)

const (
	rankingKeyPrefix = "ranking:"
	rankingTTL       = 48 * time.Hour
)

// RankingSnapshot is one finished ranking run stored verbatim, keyed
// by the evaluation date. The caller checks GeneratedAt for staleness.
type RankingSnapshot struct {
	RunID       string                    `json:"run_id"`
	Date        string                    `json:"date"` // YYYY-MM-DD
	GeneratedAt time.Time                 `json:"generated_at"`
	Items       []recommend.Recommendation `json:"items"`
}

// RankingStore keeps daily ranking snapshots in Redis
type RankingStore struct {
	redis *redis.Client
}

// NewRankingStore creates a new ranking store
func NewRankingStore(redisClient *redis.Client) *RankingStore {
	return &RankingStore{redis: redisClient}
}

// Save stores the snapshot under its evaluation date
func (rs *RankingStore) Save(ctx context.Context, snap *RankingSnapshot) error {
	key := rankingKeyPrefix + snap.Date

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal ranking snapshot: %w", err)
	}

	if err := rs.redis.Set(ctx, key, data, rankingTTL).Err(); err != nil {
		return fmt.Errorf("failed to set ranking snapshot in Redis: %w", err)
	}

	return nil
}

// Get retrieves the snapshot for a date (YYYY-MM-DD). A missing key
// returns nil without error.
func (rs *RankingStore) Get(ctx context.Context, date string) (*RankingSnapshot, error) {
	key := rankingKeyPrefix + date

	data, err := rs.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ranking snapshot from Redis: %w", err)
	}

	var snap RankingSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ranking snapshot: %w", err)
	}

	return &snap, nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"
	"main/utils"

	"github.com/redis/go-redis/v9"
)

const sessionsKeyPrefix = "screentime:sessions:"

// StatsCache holds per-user session snapshots in Redis so repeated dashboard
// reads do not hit the repository. Writes invalidate the snapshot; readers
// fall through to the repository on miss or Redis error.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

type sessionSnapshot struct {
	Sessions []*model.ScreenTimeSession `json:"sessions"`
	CachedAt time.Time                  `json:"cached_at"`
}

// NewStatsCache connects to Redis and verifies the connection.
func NewStatsCache(redisURL string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &StatsCache{client: client, ttl: ttl}, nil
}

// NewStatsCacheWithClient wraps an existing client. Tests use this with
// miniredis.
func NewStatsCacheWithClient(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func sessionsKey(userID int) string {
	return fmt.Sprintf("%s%d", sessionsKeyPrefix, userID)
}

// GetSessions returns the cached snapshot for the user, or nil on miss.
func (sc *StatsCache) GetSessions(ctx context.Context, userID int) ([]*model.ScreenTimeSession, error) {
	data, err := sc.client.Get(ctx, sessionsKey(userID)).Bytes()
	if err == redis.Nil {
		utils.TrackCacheOperation("miss")
		return nil, nil
	}
	if err != nil {
		utils.TrackCacheOperation("error")
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	var snapshot sessionSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		utils.TrackCacheOperation("error")
		return nil, fmt.Errorf("failed to decode session snapshot: %w", err)
	}

	utils.TrackCacheOperation("hit")
	return snapshot.Sessions, nil
}

// SetSessions caches the user's full session list.
func (sc *StatsCache) SetSessions(ctx context.Context, userID int, sessions []*model.ScreenTimeSession) error {
	snapshot := sessionSnapshot{
		Sessions: sessions,
		CachedAt: time.Now(),
	}

	data, err := json.Marshal(&snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}

	if err := sc.client.Set(ctx, sessionsKey(userID), data, sc.ttl).Err(); err != nil {
		utils.TrackCacheOperation("error")
		return fmt.Errorf("failed to cache session snapshot: %w", err)
	}

	utils.TrackCacheOperation("set")
	return nil
}

// Invalidate drops the user's snapshot. Called on every session write.
func (sc *StatsCache) Invalidate(ctx context.Context, userID int) error {
	if err := sc.client.Del(ctx, sessionsKey(userID)).Err(); err != nil {
		utils.TrackCacheOperation("error")
		return fmt.Errorf("failed to invalidate session snapshot: %w", err)
	}
	utils.TrackCacheOperation("invalidate")
	return nil
}

// Close releases the Redis connection.
func (sc *StatsCache) Close() error {
	return sc.client.Close()
}

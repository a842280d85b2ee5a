package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"streamhub/internal/http-api/models"
)

const (
	KeyFeatured = "movies:featured"
	KeyRecent   = "movies:recent"
)

// MovieCache caches the featured/recent movie lists in Redis. A nil
// *MovieCache is valid and turns every operation into a no-op so the API
// keeps serving from the database when Redis is unavailable.
type MovieCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMovieCache(redisURL, password string, ttl time.Duration) (*MovieCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &MovieCache{client: rdb, ttl: ttl}, nil
}

// GetMovies returns the cached list for key, reporting whether it was found.
func (c *MovieCache) GetMovies(ctx context.Context, key string) ([]models.Movie, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var movies []models.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, false
	}
	return movies, true
}

// SetMovies stores the list under key with the configured TTL, best-effort.
func (c *MovieCache) SetMovies(ctx context.Context, key string, movies []models.Movie) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(movies)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, c.ttl)
}

// Invalidate drops the cached lists after a catalog write.
func (c *MovieCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}

func (c *MovieCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

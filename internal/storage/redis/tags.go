package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "tags:"

type Config struct {
	Address  string
	Password string
	DB       int
	PoolSize int
}

// TagStore is a Redis-backed tag cache. Entries are JSON-encoded string
// lists stored without expiry; tag values are stable, so entries live until
// someone flushes the keyspace.
type TagStore struct {
	rdb *redis.Client
}

func NewTagStore(cfg Config) (*TagStore, error) {
	if cfg.Address == "" {
		cfg.Address = "localhost:6379"
	}
	if cfg.PoolSize == 0 {
		cfg.PoolSize = 10
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &TagStore{rdb: rdb}, nil
}

// GetTags bulk-reads tag lists for the given cache keys. Keys without an
// entry are omitted from the result.
func (s *TagStore) GetTags(ctx context.Context, keys []string) (map[string][]string, error) {
	if len(keys) == 0 {
		return map[string][]string{}, nil
	}

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = keyPrefix + key
	}

	values, err := s.rdb.MGet(ctx, prefixed...).Result()
	if err != nil {
		return nil, fmt.Errorf("bulk get tags: %w", err)
	}

	result := make(map[string][]string, len(keys))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var tags []string
		if err := json.Unmarshal([]byte(raw), &tags); err != nil {
			continue
		}
		if tags == nil {
			tags = []string{}
		}
		result[keys[i]] = tags
	}

	return result, nil
}

// SaveTags bulk-upserts tag lists in one pipelined round trip.
func (s *TagStore) SaveTags(ctx context.Context, entries map[string][]string) error {
	if len(entries) == 0 {
		return nil
	}

	pipe := s.rdb.Pipeline()
	for key, tags := range entries {
		if tags == nil {
			tags = []string{}
		}
		data, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("encode tags for %s: %w", key, err)
		}
		pipe.Set(ctx, keyPrefix+key, data, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("bulk save tags: %w", err)
	}

	return nil
}

func (s *TagStore) Close() error {
	return s.rdb.Close()
}

package tmpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/TJurijs/5esrd-api/util"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	CachePrefix = "cache:"
)

var ErrCacheMiss = errors.New("cached response not found or expired")

// CachedResponse is a rendered JSON body together with the status it was served with.
type CachedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

type Store interface {
	GetResponse(ctx context.Context, key string) (*CachedResponse, error)
	SaveResponse(ctx context.Context, key string, resp CachedResponse, ttl time.Duration) error
	Flush(ctx context.Context) error
}

type RedisStore struct {
	client *redis.Client
}

// NewStore returns a Redis backed store, or a NoopStore when no Redis address is configured.
func NewStore(config *util.Config) Store {
	if config.RedisAddress == "" {
		return NoopStore{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Function to save a rendered response under the request key.
func (store *RedisStore) SaveResponse(
	ctx context.Context,
	key string,
	resp CachedResponse,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to serialize cached response: %w", err)
	}

	return store.client.Set(ctx, CachePrefix+key, jsonData, ttl).Err()
}

// Function to retrieve a cached response.
// Returns ErrCacheMiss if not found or expired.
func (store *RedisStore) GetResponse(ctx context.Context, key string) (*CachedResponse, error) {
	jsonData, err := store.client.Get(ctx, CachePrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached response: %w", err)
	}

	var resp CachedResponse
	if err := json.Unmarshal(jsonData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse cached response json: %w", err)
	}

	return &resp, nil
}

// Flush removes every cached response. Keys outside CachePrefix are left alone.
func (store *RedisStore) Flush(ctx context.Context) error {
	iter := store.client.Scan(ctx, 0, CachePrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached responses: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	return store.client.Del(ctx, keys...).Err()
}

func (store *RedisStore) Close() error {
	return store.client.Close()
}

// NoopStore never holds anything. Used when caching is disabled.
type NoopStore struct{}

func (NoopStore) GetResponse(context.Context, string) (*CachedResponse, error) {
	return nil, ErrCacheMiss
}

func (NoopStore) SaveResponse(context.Context, string, CachedResponse, time.Duration) error {
	return nil
}

func (NoopStore) Flush(context.Context) error {
	return nil
}

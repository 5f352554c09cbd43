package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every register key inside a shared redis instance.
const keyPrefix = "nagadipos:"

// RedisStore is the go-redis backed driver.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates and validates a go-redis client connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, blob []byte) error {
	// Snapshots never expire. The register owns its own clearing semantics.
	return s.rdb.Set(ctx, keyPrefix+key, blob, 0).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Client exposes the underlying connection for composition-root reuse.
func (s *RedisStore) Client() *redis.Client { return s.rdb }

var _ BlobStore = (*RedisStore)(nil)

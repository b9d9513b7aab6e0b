package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

var ErrNotInitialized = errors.New("redis client not initialized")

// InitFromEnv connects using REDIS_URL, then VALKEY_URL (rediss:// for TLS),
// then REDIS_ADDR with a localhost fallback.
func InitFromEnv() error {
	var opt *redis.Options

	switch {
	case os.Getenv("REDIS_URL") != "":
		parsed, err := redis.ParseURL(os.Getenv("REDIS_URL"))
		if err != nil {
			return fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		opt = parsed

	case os.Getenv("VALKEY_URL") != "":
		parsed, err := redis.ParseURL(os.Getenv("VALKEY_URL"))
		if err != nil {
			return fmt.Errorf("failed to parse VALKEY_URL: %w", err)
		}
		opt = parsed

	default:
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		opt = &redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			Username: os.Getenv("REDIS_USERNAME"),
		}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to redis/valkey: %w", err)
	}

	Client = client
	return nil
}

// Get returns "" with a nil error on a cache miss.
func Get(ctx context.Context, key string) (string, error) {
	if Client == nil {
		return "", ErrNotInitialized
	}

	val, err := Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if Client == nil {
		return ErrNotInitialized
	}
	return Client.Set(ctx, key, value, ttl).Err()
}

func DeleteByPrefix(ctx context.Context, prefix string) error {
	if Client == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := Client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := Client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return nil
}

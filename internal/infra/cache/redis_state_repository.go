// Package cache implements the Redis-backed state repository.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"homework_status_bot/internal/domain/homework"

	"github.com/redis/go-redis/v9"
)

// DefaultStateKey is the hash that holds the polling state.
const DefaultStateKey = "homework_bot:state"

const (
	fieldCursor      = "cursor"
	fieldLastMessage = "last_message"
)

// RedisStateRepository stores the polling state as a Redis hash.
type RedisStateRepository struct {
	client redis.UniversalClient
	key    string
}

// NewRedisClient connects to the server described by a redis:// URL and pings it.
func NewRedisClient(ctx context.Context, rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func NewRedisStateRepository(client redis.UniversalClient, key string) *RedisStateRepository {
	if key == "" {
		key = DefaultStateKey
	}
	return &RedisStateRepository{client: client, key: key}
}

func (r *RedisStateRepository) Load(ctx context.Context) (homework.State, error) {
	values, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return homework.State{}, homework.ErrStateNotFound
		}
		return homework.State{}, fmt.Errorf("redis hgetall %s: %w", r.key, err)
	}
	rawCursor, ok := values[fieldCursor]
	if !ok {
		return homework.State{}, homework.ErrStateNotFound
	}
	cursor, err := strconv.ParseInt(rawCursor, 10, 64)
	if err != nil {
		return homework.State{}, fmt.Errorf("corrupt cursor %q in %s: %w", rawCursor, r.key, err)
	}
	return homework.State{Cursor: cursor, LastMessage: values[fieldLastMessage]}, nil
}

func (r *RedisStateRepository) Save(ctx context.Context, s homework.State) error {
	err := r.client.HSet(ctx, r.key,
		fieldCursor, strconv.FormatInt(s.Cursor, 10),
		fieldLastMessage, s.LastMessage,
	).Err()
	if err != nil {
		return fmt.Errorf("redis hset %s: %w", r.key, err)
	}
	return nil
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"homeprice/internal/form"
)

const keyPrefix = "homeprice:session:"

// RedisStore keeps sessions in Redis so several instances can serve one browser
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{
		client: rdb,
		ttl:    ttl,
	}
}

// Ping checks that Redis is reachable
func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, id string) (*form.State, bool, error) {
	val, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	var state form.State
	if err := json.Unmarshal(val, &state); err != nil {
		return nil, false, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &state, true, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, state *form.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", id, err)
	}
	if err := r.client.Set(ctx, keyPrefix+id, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

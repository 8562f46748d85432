package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/jason-s-yu/uno/engine"
)

const redisKeyPrefix = "uno:game:"

// Redis stores encoded games as plain string values.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps an existing client. A zero ttl keeps games forever.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Load(ctx context.Context, id string) (engine.Game, error) {
	b, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return engine.Game{}, errors.Wrapf(ErrNotFound, "redis: %s", id)
	}
	if err != nil {
		return engine.Game{}, errors.Wrapf(err, "redis: get %s", id)
	}
	g, err := decode(b)
	if err != nil {
		return engine.Game{}, errors.Wrapf(err, "redis: decoding %s", id)
	}
	return g, nil
}

func (r *Redis) Save(ctx context.Context, id string, g engine.Game) error {
	b, err := encode(g)
	if err != nil {
		return errors.Wrapf(err, "redis: encoding %s", id)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+id, b, r.ttl).Err(); err != nil {
		return errors.Wrapf(err, "redis: set %s", id)
	}
	return nil
}

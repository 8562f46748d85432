package events

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/uno/service/internal/logging"
)

const redisChannel = "uno:events"

// RedisRelay fans notifications out across processes over Redis pub/sub.
// Messages published by this process come back through the same
// subscription and reach local subscribers through the embedded Hub.
type RedisRelay struct {
	client *redis.Client
	pubsub *redis.PubSub
	hub    *Hub
	log    logrus.FieldLogger
	done   chan struct{}
}

func NewRedisRelay(ctx context.Context, client *redis.Client, log logrus.FieldLogger) (*RedisRelay, error) {
	ps := client.Subscribe(ctx, redisChannel)
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, errors.Wrapf(err, "redis: subscribing to %s", redisChannel)
	}
	r := &RedisRelay{
		client: client,
		pubsub: ps,
		hub:    NewHub(),
		log:    log,
		done:   make(chan struct{}),
	}
	go r.run()
	return r, nil
}

func (r *RedisRelay) run() {
	defer close(r.done)
	for msg := range r.pubsub.Channel() {
		r.log.WithField(logging.GameIDKey, msg.Payload).Debug("redis: game changed")
		r.hub.Notify(context.Background(), msg.Payload)
	}
}

func (r *RedisRelay) Notify(ctx context.Context, id string) error {
	if err := r.client.Publish(ctx, redisChannel, id).Err(); err != nil {
		return errors.Wrapf(err, "redis: publishing %s", id)
	}
	return nil
}

func (r *RedisRelay) Subscribe(ctx context.Context, id string) (<-chan string, func()) {
	return r.hub.Subscribe(ctx, id)
}

func (r *RedisRelay) Close() error {
	err := r.pubsub.Close()
	<-r.done
	return err
}

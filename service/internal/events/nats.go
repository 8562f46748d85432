package events

import (
	"context"

	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/uno/service/internal/logging"
)

const natsSubject = "uno.events"

// NatsRelay fans notifications out across processes over a NATS subject.
type NatsRelay struct {
	nc  *natsgo.Conn
	sub *natsgo.Subscription
	hub *Hub
	log logrus.FieldLogger
}

func NewNatsRelay(nc *natsgo.Conn, log logrus.FieldLogger) (*NatsRelay, error) {
	r := &NatsRelay{nc: nc, hub: NewHub(), log: log}
	sub, err := nc.Subscribe(natsSubject, r.onMessage)
	if err != nil {
		return nil, errors.Wrapf(err, "nats: subscribing to %s", natsSubject)
	}
	if err := nc.Flush(); err != nil {
		sub.Unsubscribe()
		return nil, errors.Wrap(err, "nats: flush")
	}
	r.sub = sub
	return r, nil
}

func (r *NatsRelay) onMessage(msg *natsgo.Msg) {
	id := string(msg.Data)
	r.log.WithField(logging.GameIDKey, id).Debug("nats: game changed")
	r.hub.Notify(context.Background(), id)
}

func (r *NatsRelay) Notify(_ context.Context, id string) error {
	if err := r.nc.Publish(natsSubject, []byte(id)); err != nil {
		return errors.Wrapf(err, "nats: publishing %s", id)
	}
	return nil
}

func (r *NatsRelay) Subscribe(ctx context.Context, id string) (<-chan string, func()) {
	return r.hub.Subscribe(ctx, id)
}

func (r *NatsRelay) Close() error {
	return r.sub.Unsubscribe()
}

// Command server runs the UNO game service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jason-s-yu/uno/engine"
	"github.com/jason-s-yu/uno/service/internal/api"
	"github.com/jason-s-yu/uno/service/internal/config"
	"github.com/jason-s-yu/uno/service/internal/events"
	"github.com/jason-s-yu/uno/service/internal/game"
	"github.com/jason-s-yu/uno/service/internal/logging"
	"github.com/jason-s-yu/uno/service/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("loading configuration")
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, nil)
	if err != nil {
		logrus.WithError(err).Fatal("building logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// closers collects cleanup funcs and runs them in reverse order.
type closers []func()

func (c *closers) add(f func()) { *c = append(*c, f) }

func (c closers) run() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	var cleanup closers
	defer cleanup.run()

	var rdb *redis.Client
	if cfg.Store == config.StoreRedis || cfg.PubSub == config.PubSubRedis {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cleanup.add(func() { rdb.Close() })
		if err := rdb.Ping(ctx).Err(); err != nil {
			return errors.Wrapf(err, "connecting to redis at %s", cfg.RedisAddr)
		}
	}

	st, err := openStore(ctx, cfg, rdb, &cleanup)
	if err != nil {
		return err
	}
	relay, err := openRelay(ctx, cfg, rdb, log, &cleanup)
	if err != nil {
		return err
	}

	svc := game.NewService(st, relay,
		game.WithRules(engine.Rules{CardsPerPlayer: cfg.CardsPerPlayer, TargetScore: cfg.TargetScore}),
		game.WithShuffler(engine.NewRandomShuffler(cfg.ShuffleSeed)),
		game.WithLogger(logging.Named(log, "game")),
	)
	handler := api.New(svc, logging.Named(log, "api"), api.WithRateLimit(cfg.RateLimit))
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":   cfg.HTTPAddr,
			"store":  cfg.Store,
			"pubsub": cfg.PubSub,
		}).Info("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config, rdb *redis.Client, cleanup *closers) (store.Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return store.NewMemory(), nil
	case config.StoreFile:
		return store.NewFile(cfg.DataDir)
	case config.StoreRedis:
		return store.NewRedis(rdb, 0), nil
	case config.StorePostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, errors.Wrap(err, "connecting to postgres")
		}
		cleanup.add(pool.Close)
		return store.NewPostgres(ctx, pool)
	default:
		return nil, errors.Errorf("unknown store %q", cfg.Store)
	}
}

func openRelay(ctx context.Context, cfg config.Config, rdb *redis.Client, log *logrus.Logger, cleanup *closers) (events.Relay, error) {
	var relay events.Relay
	switch cfg.PubSub {
	case config.PubSubMemory:
		relay = events.NewHub()
	case config.PubSubRedis:
		r, err := events.NewRedisRelay(ctx, rdb, logging.Named(log, "events"))
		if err != nil {
			return nil, err
		}
		relay = r
	case config.PubSubNats:
		nc, err := natsgo.Connect(cfg.NatsURL, natsgo.Name("uno-server"))
		if err != nil {
			return nil, errors.Wrapf(err, "connecting to nats at %s", cfg.NatsURL)
		}
		cleanup.add(nc.Close)
		r, err := events.NewNatsRelay(nc, logging.Named(log, "events"))
		if err != nil {
			return nil, err
		}
		relay = r
	default:
		return nil, errors.Errorf("unknown pub/sub %q", cfg.PubSub)
	}
	cleanup.add(func() { relay.Close() })
	return relay, nil
}

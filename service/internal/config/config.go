// Package config reads the server configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Pub/sub backends.
const (
	PubSubMemory = "memory"
	PubSubRedis  = "redis"
	PubSubNats   = "nats"
)

// Config holds every setting of the server process.
type Config struct {
	HTTPAddr string

	Store         string
	DataDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresURL   string

	PubSub  string
	NatsURL string

	CardsPerPlayer int
	TargetScore    int
	ShuffleSeed    uint64

	LogLevel  string
	LogFormat string

	RateLimit float64
}

// Environment variable names.
const (
	envHTTPAddr       = "UNO_HTTP_ADDR"
	envStore          = "UNO_STORE"
	envDataDir        = "UNO_DATA_DIR"
	envRedisAddr      = "UNO_REDIS_ADDR"
	envRedisPassword  = "UNO_REDIS_PASSWORD"
	envRedisDB        = "UNO_REDIS_DB"
	envPostgresURL    = "UNO_POSTGRES_URL"
	envPubSub         = "UNO_PUBSUB"
	envNatsURL        = "UNO_NATS_URL"
	envCardsPerPlayer = "UNO_CARDS_PER_PLAYER"
	envTargetScore    = "UNO_TARGET_SCORE"
	envShuffleSeed    = "UNO_SHUFFLE_SEED"
	envLogLevel       = "UNO_LOG_LEVEL"
	envLogFormat      = "UNO_LOG_FORMAT"
	envRateLimit      = "UNO_RATE_LIMIT"
)

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return Config{}, errors.Wrapf(err, "loading %s", f)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	c := Config{
		HTTPAddr:      get(envHTTPAddr, ":8080"),
		Store:         strings.ToLower(get(envStore, StoreFile)),
		DataDir:       get(envDataDir, "./database"),
		RedisAddr:     get(envRedisAddr, "localhost:6379"),
		RedisPassword: get(envRedisPassword, ""),
		PostgresURL:   get(envPostgresURL, ""),
		PubSub:        strings.ToLower(get(envPubSub, PubSubMemory)),
		NatsURL:       get(envNatsURL, "nats://127.0.0.1:4222"),
		LogLevel:      get(envLogLevel, "info"),
		LogFormat:     get(envLogFormat, "text"),
	}

	var err error
	if c.RedisDB, err = atoi(envRedisDB, get(envRedisDB, "0")); err != nil {
		return Config{}, err
	}
	if c.CardsPerPlayer, err = atoi(envCardsPerPlayer, get(envCardsPerPlayer, "7")); err != nil {
		return Config{}, err
	}
	if c.TargetScore, err = atoi(envTargetScore, get(envTargetScore, "0")); err != nil {
		return Config{}, err
	}
	if c.ShuffleSeed, err = strconv.ParseUint(get(envShuffleSeed, "0"), 10, 64); err != nil {
		return Config{}, errors.Wrapf(err, "%s", envShuffleSeed)
	}
	if c.RateLimit, err = strconv.ParseFloat(get(envRateLimit, "20"), 64); err != nil {
		return Config{}, errors.Wrapf(err, "%s", envRateLimit)
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func atoi(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", key)
	}
	return n, nil
}

func (c Config) validate() error {
	switch c.Store {
	case StoreMemory, StoreFile, StoreRedis:
	case StorePostgres:
		if c.PostgresURL == "" {
			return errors.Errorf("%s is required when %s=%s", envPostgresURL, envStore, StorePostgres)
		}
	default:
		return errors.Errorf("%s: unknown store %q", envStore, c.Store)
	}
	switch c.PubSub {
	case PubSubMemory, PubSubRedis, PubSubNats:
	default:
		return errors.Errorf("%s: unknown pub/sub %q", envPubSub, c.PubSub)
	}
	if c.CardsPerPlayer < 1 {
		return errors.Errorf("%s must be at least 1", envCardsPerPlayer)
	}
	if c.TargetScore < 0 {
		return errors.Errorf("%s must not be negative", envTargetScore)
	}
	if c.RateLimit <= 0 {
		return errors.Errorf("%s must be positive", envRateLimit)
	}
	return nil
}

package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/jason-s-yu/uno/engine"
)

const createGamesTable = `
CREATE TABLE IF NOT EXISTS uno_games (
	id         TEXT PRIMARY KEY,
	state      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Postgres stores each game as a jsonb row.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps pool and creates the games table if needed.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*Postgres, error) {
	if _, err := pool.Exec(ctx, createGamesTable); err != nil {
		return nil, errors.Wrap(err, "postgres: creating uno_games")
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Load(ctx context.Context, id string) (engine.Game, error) {
	var b []byte
	err := p.pool.QueryRow(ctx, `SELECT state FROM uno_games WHERE id = $1`, id).Scan(&b)
	if errors.Is(err, pgx.ErrNoRows) {
		return engine.Game{}, errors.Wrapf(ErrNotFound, "postgres: %s", id)
	}
	if err != nil {
		return engine.Game{}, errors.Wrapf(err, "postgres: select %s", id)
	}
	g, err := decode(b)
	if err != nil {
		return engine.Game{}, errors.Wrapf(err, "postgres: decoding %s", id)
	}
	return g, nil
}

func (p *Postgres) Save(ctx context.Context, id string, g engine.Game) error {
	b, err := encode(g)
	if err != nil {
		return errors.Wrapf(err, "postgres: encoding %s", id)
	}
	_, err = p.pool.Exec(ctx, `
INSERT INTO uno_games (id, state, updated_at) VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE SET state = EXCLUDED.state, updated_at = now()`, id, b)
	if err != nil {
		return errors.Wrapf(err, "postgres: upsert %s", id)
	}
	return nil
}

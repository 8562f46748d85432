package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/jason-s-yu/uno/engine"
)

const gameTable = "game"

// File stores one JSON document per game under <dir>/game/<id>.json.
// Writes go through a temp file and rename so readers never see a partial
// document.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(filepath.Join(dir, gameTable), 0o755); err != nil {
		return nil, errors.Wrapf(err, "file: creating %s", dir)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", errors.Errorf("file: invalid game id %q", id)
	}
	return filepath.Join(f.dir, gameTable, id+".json"), nil
}

func (f *File) Load(ctx context.Context, id string) (engine.Game, error) {
	if err := ctx.Err(); err != nil {
		return engine.Game{}, err
	}
	p, err := f.path(id)
	if err != nil {
		return engine.Game{}, err
	}
	b, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return engine.Game{}, errors.Wrapf(ErrNotFound, "file: %s", id)
	}
	if err != nil {
		return engine.Game{}, errors.Wrapf(err, "file: reading %s", p)
	}
	g, err := decode(b)
	if err != nil {
		return engine.Game{}, errors.Wrapf(err, "file: decoding %s", p)
	}
	return g, nil
}

func (f *File) Save(ctx context.Context, id string, g engine.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := f.path(id)
	if err != nil {
		return err
	}
	b, err := codec.MarshalIndent(g, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "file: encoding %s", id)
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), id+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "file: creating temp file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "file: writing %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "file: closing %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return errors.Wrapf(err, "file: renaming to %s", p)
	}
	return nil
}

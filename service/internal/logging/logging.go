// Package logging builds the structured loggers used by the server.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Field keys shared across packages.
const (
	LoggerKey      string = "logger"
	GameIDKey      string = "gameID"
	PlayerIndexKey string = "playerIndex"
	PlayerNameKey  string = "playerName"
	ActionKey      string = "action"
	RoundKey       string = "round"
	StatusKey      string = "status"
	RemoteAddrKey  string = "remoteAddr"
)

// New returns a root logger writing to out (stdout when nil).
// format is "text" or "json".
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	if out == nil {
		out = os.Stdout
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	switch strings.ToLower(format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
	return l, nil
}

// Named returns an entry tagged with a component name.
func Named(l *logrus.Logger, name string) *logrus.Entry {
	return l.WithField(LoggerKey, name)
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

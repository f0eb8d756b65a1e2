// pkg/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log — базовый логгер процесса. Сессии берут из него свои записи через
// WithFields и сам Log не меняют.
var Log = logrus.New()

// Options — настройки логгера. Пустые поля берутся из LOG_LEVEL и
// LOG_FORMAT, затем из значений по умолчанию (info, text, stdout).
type Options struct {
	Level  string
	Format string // "text" или "json"
	Output io.Writer
}

// New собирает логгер по Options.
func New(opts Options) (*logrus.Logger, error) {
	if opts.Level == "" {
		opts.Level = os.Getenv("LOG_LEVEL")
	}
	if opts.Level == "" {
		opts.Level = "info"
	}
	if opts.Format == "" {
		opts.Format = os.Getenv("LOG_FORMAT")
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetLevel(level)
	l.SetOutput(opts.Output)
	switch strings.ToLower(opts.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("log format %q: want text or json", opts.Format)
	}
	return l, nil
}

// Init настраивает Log. При ошибке Log остаётся прежним.
func Init(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	Log = l
	return nil
}

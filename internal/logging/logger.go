package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Alp4ka/pagenav/internal/config"
)

// LevelEnv overrides the configured log level when set.
const LevelEnv = "PAGENAV_LOG_LEVEL"

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	base      = logrus.New()
)

// Configure applies the log configuration to the shared logger and writes
// to out (stderr when nil). Loggers handed out by NewLogger share it.
func Configure(cfg config.LogConfig, out io.Writer) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	levelStr := "info"
	if env := os.Getenv(LevelEnv); env != "" {
		levelStr = env
	} else if cfg.Level != "" {
		levelStr = cfg.Level
	}

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	switch cfg.Format {
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if out == nil {
		out = os.Stderr
	}
	base.SetOutput(out)

	if err != nil {
		base.WithField("level", levelStr).Warn("Unknown log level, falling back to info")
	}

	return base
}

// NewLogger returns the logger for a component. Entries are cached per
// component.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	entry := base.WithField("component", component)
	loggers[component] = entry

	return entry
}

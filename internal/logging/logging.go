package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "BOXPICK_LOG_LEVEL"
	EnvLogTimestamp = "BOXPICK_LOG_TIMESTAMP"
	EnvLogNoColor   = "BOXPICK_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Options selects the log destination and verbosity. An empty File
// means stderr.
type Options struct {
	Level     string
	File      string
	Timestamp bool
	NoColor   bool
}

// Configure installs the global zerolog logger. The returned closer
// releases the log file, if one was opened.
func Configure(profile Profile, opts Options) (io.Closer, error) {
	cfg := defaultOptions(profile)
	if opts.Level != "" {
		cfg.Level = opts.Level
	}
	if opts.File != "" {
		cfg.File = opts.File
	}
	cfg.NoColor = cfg.NoColor || opts.NoColor
	applyEnvOverrides(&cfg)

	level, ok := parseLevel(cfg.Level)
	if !ok {
		level = zerolog.InfoLevel
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
		cfg.NoColor = true
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		console.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
	return closer, nil
}

// ConfigureTests routes logs to stderr at debug level
func ConfigureTests() {
	_, _ = Configure(ProfileTest, Options{})
}

func defaultOptions(profile Profile) Options {
	switch profile {
	case ProfileTest:
		return Options{Level: "debug", Timestamp: false}
	default:
		return Options{Level: "info", Timestamp: true}
	}
}

func applyEnvOverrides(cfg *Options) {
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		if _, ok := parseLevel(raw); ok {
			cfg.Level = raw
		}
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

package logger

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Config selects level, encoding and destination of a logger. Zero fields
// mean info, console, stdout and an RFC 3339 timestamp with milliseconds.
type Config struct {
	Level      string
	Format     string // json or console
	Output     string // stdout, stderr or a file path
	TimeFormat string
}

func (c Config) withDefaults() Config {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = defaultTimeFormat
	}
	return c
}

// New builds a zap logger. Unknown levels or formats and an output file that
// cannot be opened are errors.
func New(cfg Config) (*zap.Logger, error) {
	cfg = cfg.withDefaults()

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	enc, err := newEncoder(cfg)
	if err != nil {
		return nil, err
	}
	sink, _, err := zap.Open(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("open log output %s: %w", cfg.Output, err)
	}

	return zap.New(zapcore.NewCore(enc, sink, level),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

// ParseLevel accepts zap level names in any case, plus "warning".
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		name = "warn"
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

func newEncoder(cfg Config) (zapcore.Encoder, error) {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	ec.EncodeDuration = zapcore.MillisDurationEncoder

	switch cfg.Format {
	case "json":
		return zapcore.NewJSONEncoder(ec), nil
	case "console":
		// colors only make sense on a terminal stream
		if cfg.Output == "stdout" || cfg.Output == "stderr" {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			ec.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		return zapcore.NewConsoleEncoder(ec), nil
	default:
		return nil, fmt.Errorf("log format %q: want json or console", cfg.Format)
	}
}

// Sync flushes buffered entries, ignoring the errors a terminal returns
// for fsync.
func Sync(l *zap.Logger) error {
	err := l.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}

package logger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLConfig controls what the gorm adapter reports.
type SQLConfig struct {
	Level gormlogger.LogLevel
	// SlowThreshold of zero disables slow statement warnings.
	SlowThreshold time.Duration
	// ReportNotFound logs gorm.ErrRecordNotFound as an error. Repositories
	// translate it into a not-found result, so it is off by default.
	ReportNotFound bool
}

// SQLLogger routes gorm statements into zap. Every entry carries the
// operation, relation and employee fields stored in the context.
type SQLLogger struct {
	base *zap.Logger
	cfg  SQLConfig
}

var _ gormlogger.Interface = (*SQLLogger)(nil)

// NewSQLLogger returns a gorm logger writing to base under the "sql" name.
func NewSQLLogger(base *zap.Logger, cfg SQLConfig) *SQLLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &SQLLogger{base: base.Named("sql"), cfg: cfg}
}

// LogMode returns a copy reporting at level.
func (l *SQLLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.cfg.Level = level
	return &cp
}

func (l *SQLLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.cfg.Level >= gormlogger.Info {
		WithLogger(ctx, l.base).Info(fmt.Sprintf(msg, data...))
	}
}

func (l *SQLLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.cfg.Level >= gormlogger.Warn {
		WithLogger(ctx, l.base).Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *SQLLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.cfg.Level >= gormlogger.Error {
		WithLogger(ctx, l.base).Error(fmt.Sprintf(msg, data...))
	}
}

// Trace reports a finished statement. Failures win over slowness, and
// plain statements are only emitted at Info.
func (l *SQLLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.cfg.Level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && (l.cfg.ReportNotFound || !errors.Is(err, gorm.ErrRecordNotFound))
	slow := l.cfg.SlowThreshold > 0 && elapsed > l.cfg.SlowThreshold

	switch {
	case failed && l.cfg.Level >= gormlogger.Error:
		l.statement(ctx, elapsed, fc).Error("Statement failed", zap.Error(err))
	case slow && l.cfg.Level >= gormlogger.Warn:
		l.statement(ctx, elapsed, fc).Warn("Slow statement",
			zap.Duration("threshold", l.cfg.SlowThreshold))
	case l.cfg.Level >= gormlogger.Info:
		l.statement(ctx, elapsed, fc).Debug("Statement")
	}
}

func (l *SQLLogger) statement(ctx context.Context, elapsed time.Duration, fc func() (string, int64)) *ContextLogger {
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Duration("elapsed", elapsed),
	}
	// gorm passes -1 when the driver does not report a row count
	if rows >= 0 {
		fields = append(fields, zap.Int64("rows", rows))
	}
	return WithLogger(ctx, l.base).With(fields...)
}

// ParseSQLLevel converts a configured log level name. Both debug and info
// show every statement; unknown names fall back to warn.
func ParseSQLLevel(name string) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent", "off":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "debug", "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

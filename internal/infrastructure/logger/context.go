package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	scopeKey
)

// scope is what a statement is working on. Each With* call stores a copy,
// so contexts derived earlier are not affected.
type scope struct {
	operation  string
	relation   string
	employeeID string
}

func scopeOf(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey).(scope)
	return s
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the attached logger or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithOperation records the running command or repository operation.
func WithOperation(ctx context.Context, operation string) context.Context {
	s := scopeOf(ctx)
	s.operation = operation
	return context.WithValue(ctx, scopeKey, s)
}

// WithRelation records the table or view being accessed.
func WithRelation(ctx context.Context, relation string) context.Context {
	s := scopeOf(ctx)
	s.relation = relation
	return context.WithValue(ctx, scopeKey, s)
}

// WithEmployeeID records the employee the dashboard counts are computed for.
func WithEmployeeID(ctx context.Context, employeeID string) context.Context {
	s := scopeOf(ctx)
	s.employeeID = employeeID
	return context.WithValue(ctx, scopeKey, s)
}

func GetOperation(ctx context.Context) string { return scopeOf(ctx).operation }

func GetRelation(ctx context.Context) string { return scopeOf(ctx).relation }

func GetEmployeeID(ctx context.Context) string { return scopeOf(ctx).employeeID }

// Fields returns the non-empty scope values of ctx as zap fields.
func Fields(ctx context.Context) []zap.Field {
	s := scopeOf(ctx)
	fields := make([]zap.Field, 0, 3)
	if s.operation != "" {
		fields = append(fields, zap.String("operation", s.operation))
	}
	if s.relation != "" {
		fields = append(fields, zap.String("relation", s.relation))
	}
	if s.employeeID != "" {
		fields = append(fields, zap.String("employee_id", s.employeeID))
	}
	return fields
}

// ContextLogger adds the scope fields of its context to every entry.
type ContextLogger struct {
	ctx    context.Context
	logger *zap.Logger
}

// L returns a ContextLogger using the logger stored in ctx.
// Usage: logger.L(ctx).Info("message", zap.String("key", "value"))
func L(ctx context.Context) *ContextLogger {
	return &ContextLogger{
		ctx:    ctx,
		logger: FromContext(ctx),
	}
}

// WithLogger returns a ContextLogger using the provided logger instead of
// extracting from context.
func WithLogger(ctx context.Context, logger *zap.Logger) *ContextLogger {
	return &ContextLogger{
		ctx:    ctx,
		logger: logger,
	}
}

func (cl *ContextLogger) enrichedLogger() *zap.Logger {
	l := cl.logger
	if l == nil {
		l = zap.NewNop()
	}
	if fields := Fields(cl.ctx); len(fields) > 0 {
		l = l.With(fields...)
	}
	return l
}

// With creates a child ContextLogger with additional fields.
func (cl *ContextLogger) With(fields ...zap.Field) *ContextLogger {
	l := cl.logger
	if l == nil {
		l = zap.NewNop()
	}
	return &ContextLogger{
		ctx:    cl.ctx,
		logger: l.With(fields...),
	}
}

func (cl *ContextLogger) Debug(msg string, fields ...zap.Field) {
	cl.enrichedLogger().Debug(msg, fields...)
}

func (cl *ContextLogger) Info(msg string, fields ...zap.Field) {
	cl.enrichedLogger().Info(msg, fields...)
}

func (cl *ContextLogger) Warn(msg string, fields ...zap.Field) {
	cl.enrichedLogger().Warn(msg, fields...)
}

func (cl *ContextLogger) Error(msg string, fields ...zap.Field) {
	cl.enrichedLogger().Error(msg, fields...)
}

// Zap returns the underlying zap.Logger enriched with the context fields.
func (cl *ContextLogger) Zap() *zap.Logger {
	return cl.enrichedLogger()
}

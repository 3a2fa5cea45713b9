package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mutant-admin/config"
	deliverycontext "mutant-admin/internal/delivery/context"
	"mutant-admin/internal/infra/persistence/model"

	"gorm.io/gorm/logger"
)

const auditSlowQueryThreshold = 200 * time.Millisecond

// auditQueryLogger reports audit log statements through the logger of the
// request that recorded the decision.
type auditQueryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newAuditQueryLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &auditQueryLogger{
		logger: baseLogger,
		level:  level,
	}
}

func (l *auditQueryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *auditQueryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *auditQueryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *auditQueryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *auditQueryLogger) printf(ctx context.Context, enabled logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < enabled {
		return
	}

	l.scoped(ctx).LogAttrs(ctx, level, "Audit log", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *auditQueryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error:
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.scoped(ctx).LogAttrs(ctx, slog.LevelError, "Audit log query failed", attrs...)
	case elapsed > auditSlowQueryThreshold && l.level >= logger.Warn:
		l.scoped(ctx).LogAttrs(ctx, slog.LevelWarn, "Audit log query slow", queryAttrs(sqlAndRowsFn, elapsed)...)
	case l.level >= logger.Info:
		l.scoped(ctx).LogAttrs(ctx, slog.LevelDebug, "Audit log query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

// scoped prefers the request logger. Outside a request the request id, if
// any, is tagged explicitly.
func (l *auditQueryLogger) scoped(ctx context.Context) *slog.Logger {
	log := deliverycontext.GetLogger(ctx)
	if log == nil {
		log = l.logger
		if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
			log = log.With(slog.String("request_id", requestID))
		}
	}

	return log.With(slog.String("table", model.ModerationDecisionTable))
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

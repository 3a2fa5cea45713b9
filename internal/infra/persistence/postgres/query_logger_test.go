package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"mutant-admin/config"
	deliverycontext "mutant-admin/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	decoder := json.NewDecoder(buf)
	for decoder.More() {
		var line map[string]any
		require.NoError(t, decoder.Decode(&line))
		lines = append(lines, line)
	}

	return lines
}

func sqlAndRows() (string, int64) {
	return `INSERT INTO "moderation_decisions" ("id") VALUES ('d1')`, 1
}

func TestAuditQueryLogger_FailureTaggedWithRequest(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	queryLogger := newAuditQueryLogger(base, &config.Config{})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")
	queryLogger.Trace(ctx, time.Now(), sqlAndRows, assert.AnError)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "Audit log query failed", lines[0]["msg"])
	assert.Equal(t, "req-7", lines[0]["request_id"])
	assert.Equal(t, "moderation_decisions", lines[0]["table"])
	assert.Equal(t, float64(1), lines[0]["rows"])
	assert.Equal(t, assert.AnError.Error(), lines[0]["error"])
}

func TestAuditQueryLogger_UsesRequestLogger(t *testing.T) {
	var baseBuf, reqBuf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&baseBuf, nil))
	reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("request_id", "req-8"))
	queryLogger := newAuditQueryLogger(base, &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)
	queryLogger.Trace(ctx, time.Now().Add(-time.Second), sqlAndRows, nil)

	assert.Zero(t, baseBuf.Len())
	lines := decodeLines(t, &reqBuf)
	require.Len(t, lines, 1)
	assert.Equal(t, "Audit log query slow", lines[0]["msg"])
	assert.Equal(t, "req-8", lines[0]["request_id"])
	assert.Equal(t, "moderation_decisions", lines[0]["table"])
}

func TestAuditQueryLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	quiet := newAuditQueryLogger(base, &config.Config{})
	quiet.Trace(context.Background(), time.Now(), sqlAndRows, nil)
	quiet.Info(context.Background(), "migrated %d tables", 1)
	assert.Zero(t, buf.Len(), "fast queries and info stay quiet outside debug")

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	verbose := newAuditQueryLogger(base, debugCfg)
	verbose.Trace(context.Background(), time.Now(), sqlAndRows, nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "Audit log query", lines[0]["msg"])
	assert.Equal(t, "DEBUG", lines[0]["level"])

	silent := verbose.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), sqlAndRows, assert.AnError)
	assert.Zero(t, buf.Len())
}

package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"dashkeep/config"
	deliverycontext "dashkeep/internal/delivery/context"
	"dashkeep/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_LevelFromConfig(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, logger.Warn, newGormSlogLogger(nil, cfg).(*gormSlogLogger).level)

	cfg.Env.Debug = true
	assert.Equal(t, logger.Info, newGormSlogLogger(nil, cfg).(*gormSlogLogger).level)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at warn level")

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 2"), gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is ignored")

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 3"), errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "SELECT 3")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT 4"), nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{}).LogMode(logger.Info)

	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now(), sqlFn("SELECT 5"), nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "SELECT 5")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
	l.Error(context.Background(), "ignored %d", 1)
	assert.Empty(t, buf.String())
}

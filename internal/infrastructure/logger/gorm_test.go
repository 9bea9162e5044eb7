package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func sqlFunc() (string, int64) {
	return `SELECT * FROM "contas_a_pagar_e_receber" WHERE id = 1`, 1
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-9")

	t.Run("silent logs nothing", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		l := NewGormLogger(zap.New(core), gormlogger.Silent)

		l.Trace(ctx, time.Now(), sqlFunc, errors.New("boom"))
		assert.Equal(t, 0, recorded.Len())
	})

	t.Run("errors carry sql and request id", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		l := NewGormLogger(zap.New(core), gormlogger.Error)

		l.Trace(ctx, time.Now(), sqlFunc, errors.New("boom"))

		entries := recorded.FilterMessage("SQL error").All()
		assert.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "req-9", fields["request_id"])
		assert.Contains(t, fields["sql"], "contas_a_pagar_e_receber")
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		l := NewGormLogger(zap.New(core), gormlogger.Error)

		l.Trace(ctx, time.Now(), sqlFunc, gormlogger.ErrRecordNotFound)
		assert.Equal(t, 0, recorded.Len())
	})

	t.Run("slow statements warn", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		l := NewGormLogger(zap.New(core), gormlogger.Warn, WithSlowThreshold(time.Millisecond))

		l.Trace(ctx, time.Now().Add(-time.Second), sqlFunc, nil)
		assert.Equal(t, 1, recorded.FilterMessage("SQL slow").Len())
	})

	t.Run("info level omits sql text unless enabled", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		l := NewGormLogger(zap.New(core), gormlogger.Info)
		l.Trace(ctx, time.Now(), sqlFunc, nil)

		entries := recorded.FilterMessage("SQL query").All()
		assert.Len(t, entries, 1)
		assert.NotContains(t, entries[0].ContextMap(), "sql")

		core, recorded = observer.New(zapcore.DebugLevel)
		l = NewGormLogger(zap.New(core), gormlogger.Info, WithFullSQL(true))
		l.Trace(ctx, time.Now(), sqlFunc, nil)

		entries = recorded.FilterMessage("SQL query").All()
		assert.Len(t, entries, 1)
		assert.Contains(t, entries[0].ContextMap(), "sql")
	})
}

func TestGormLogger_LogMode(t *testing.T) {
	l := NewGormLogger(zap.NewNop(), gormlogger.Warn)
	changed := l.LogMode(gormlogger.Info).(*GormLogger)

	assert.Equal(t, gormlogger.Info, changed.logLevel)
	assert.Equal(t, gormlogger.Warn, l.logLevel)
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("unknown"))
}

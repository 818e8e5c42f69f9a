package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &ZapLogger{logger: zap.New(core)}, logs
}

func TestZapLogger_ConvertsFields(t *testing.T) {
	l, logs := observed()

	l.Info("checkout",
		String("order_id", "ORD-1"),
		Int("lines", 2),
		Duration("latency", time.Second),
		Any("total", decimal.NewFromInt(3000)),
		Error(errors.New("boom")),
	)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "ORD-1", ctx["order_id"])
		assert.EqualValues(t, 2, ctx["lines"])
		assert.Equal(t, time.Second, ctx["latency"])
		assert.Equal(t, "3000", ctx["total"])
		assert.Equal(t, "boom", ctx["error"])
	}
}

func TestZapLogger_WithContextAddsRequestID(t *testing.T) {
	l, logs := observed()

	ctx := ContextWithRequestID(context.Background(), "req-42")
	l.WithContext(ctx).Warn("slow")
	l.WithContext(context.Background()).Warn("plain")

	entries := logs.All()
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestZapLogger_WithFields(t *testing.T) {
	l, logs := observed()

	l.WithFields(String("component", "tracking")).Debug("tick")

	assert.Equal(t, "tracking", logs.All()[0].ContextMap()["component"])
}

func TestNewZapLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		l, err := NewZapLogger(env)
		assert.NoError(t, err)
		assert.NotNil(t, l)
	}
}

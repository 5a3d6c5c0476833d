package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongodemo/pkg/environment"
	"github.com/dmitrymomot/mongodemo/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter uses tint", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithNoColor(),
		)
		log.Info("hello", slog.String("collection", "people"))
		out := buf.String()
		assert.Contains(t, out, "INF")
		assert.Contains(t, out, "hello")
		assert.Contains(t, out, "collection=people")
	})

	t.Run("last formatter wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("includes static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("svc", "test")),
		)
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("run")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("run_id", ctxKey),
			logger.WithContextExtractors(nil, environment.LoggerExtractor()),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		ctx = environment.WithContext(ctx, environment.Staging)
		log.InfoContext(ctx, "context msg")
		entry := decode(t, buf)
		assert.Equal(t, "42", entry["run_id"])
		assert.Equal(t, "staging", entry["env"])
	})

	t.Run("extractors survive With and WithGroup", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("run")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("run_id", ctxKey),
		).With(slog.String("component", "demo"))
		ctx := context.WithValue(context.Background(), ctxKey, "7")
		log.InfoContext(ctx, "msg")
		entry := decode(t, buf)
		assert.Equal(t, "demo", entry["component"])
		assert.Equal(t, "7", entry["run_id"])
	})
}

func TestEnvironmentPresets(t *testing.T) {
	t.Run("development is tinted text at debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithDevelopment("mongodemo"),
			logger.WithOutput(buf),
			logger.WithNoColor(),
		)
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "DBG")
		assert.Contains(t, out, "service=mongodemo")
		assert.NotContains(t, out, "env=")
	})

	t.Run("production is JSON at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithProduction("mongodemo"),
			logger.WithOutput(buf),
		)
		log.Debug("hidden")
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "mongodemo", entry["service"])
		assert.NotContains(t, entry, "env")
	})

	t.Run("WithEnvironment dispatches", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(environment.Staging, "mongodemo"),
			logger.WithOutput(buf),
		)
		log.Debug("hidden")
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "msg", entry["msg"])
		assert.Equal(t, "mongodemo", entry["service"])
	})

	t.Run("env comes from the context once", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(environment.Production, "mongodemo"),
			logger.WithContextExtractors(environment.LoggerExtractor()),
			logger.WithOutput(buf),
		)
		ctx := environment.WithContext(context.Background(), environment.Staging)
		log.InfoContext(ctx, "msg")
		assert.Equal(t, 1, strings.Count(buf.String(), `"env":`))
		assert.Equal(t, "staging", decode(t, buf)["env"])
	})

	t.Run("empty service is ignored", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithProduction(""), logger.WithOutput(buf))
		log.Info("msg")
		assert.NotContains(t, decode(t, buf), "service")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", slog.LevelInfo, false},
		{"loud", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

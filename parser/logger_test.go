package parser

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	// NopLogger should silently discard everything, including With chains
	logger := NopLogger{}
	logger.Debug("msg", "k", "v")
	logger.Info("msg")
	logger.Warn("msg")
	logger.Error("msg")

	derived := logger.With("component", "parser")
	assert.NotNil(t, derived)
	derived.Debug("still discarded")
}

func TestSlogAdapter(t *testing.T) {
	var buf strings.Builder
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("debug msg", "key", "value")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")

	out := buf.String()
	assert.Contains(t, out, "debug msg")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "info msg")
	assert.Contains(t, out, "warn msg")
	assert.Contains(t, out, "error msg")
}

func TestSlogAdapterWith(t *testing.T) {
	var buf strings.Builder
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	derived := logger.With("component", "extractor")
	derived.Info("extracted type")

	assert.Contains(t, buf.String(), "component=extractor")
}

func TestSlogAdapterNilDefault(t *testing.T) {
	logger := NewSlogAdapter(nil)
	assert.NotNil(t, logger)
	// Must not panic when falling back to slog.Default()
	logger.Debug("discarded at default level")
}

func TestContextLogger(t *testing.T) {
	var buf strings.Builder
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	base := NewSlogAdapter(slog.New(handler))

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	logger := NewContextLogger(base, ctx)

	logger.Info("handled request")
	assert.Contains(t, buf.String(), "handled request")
	assert.Equal(t, ctx, logger.Context())

	derived, ok := logger.With("tool", "extract_type").(*ContextLogger)
	assert.True(t, ok)
	assert.Equal(t, ctx, derived.Context())
}

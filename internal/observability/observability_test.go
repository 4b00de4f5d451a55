package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	ctx := context.Background()

	debug := NewLogger("debug", "text")
	require.NotNil(t, debug)
	assert.True(t, debug.Enabled(ctx, slog.LevelDebug))

	info := NewLogger("info", "json")
	assert.False(t, info.Enabled(ctx, slog.LevelDebug))
	assert.True(t, info.Enabled(ctx, slog.LevelInfo))

	errOnly := NewLogger("error", "json")
	assert.False(t, errOnly.Enabled(ctx, slog.LevelWarn))
	assert.True(t, errOnly.Enabled(ctx, slog.LevelError))
}

func TestNewLogger_SetsProcessDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	NewLogger("debug", "json")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.DrawPasses.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.DrawPasses))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.DrawPasses))
}

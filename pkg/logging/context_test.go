package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/labelsync/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext returns default without logger", func(t *testing.T) {
		logger := logging.FromContext(context.Background())
		assert.NotNil(t, logger)
		assert.Equal(t, logging.Default(), logger)
	})

	t.Run("WithLogger round-trips through context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logging.New(buf)

		ctx := logging.WithLogger(context.Background(), &logger)
		got := logging.FromContext(ctx)

		got.Error().Msg("boom")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("Ctx is an alias for FromContext", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logging.New(buf)
		ctx := logging.WithLogger(context.Background(), &logger)

		assert.Equal(t, logging.FromContext(ctx), logging.Ctx(ctx))
	})

	t.Run("WithRepository adds repo field", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logging.New(buf)
		ctx := logging.WithLogger(context.Background(), &logger)

		ctx = logging.WithRepository(ctx, "octo", "demo")
		logging.FromContext(ctx).Error().Msg("sync failed")

		assert.Contains(t, buf.String(), `"repo":"octo/demo"`)
	})

	t.Run("WithLabel adds label field", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logging.New(buf)
		ctx := logging.WithLogger(context.Background(), &logger)

		ctx = logging.WithLabel(ctx, "bug")
		logging.FromContext(ctx).Error().Msg("action failed")

		assert.Contains(t, buf.String(), `"label":"bug"`)
	})

	t.Run("WithRunID tags logger and context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logging.New(buf)
		ctx := logging.WithLogger(context.Background(), &logger)

		ctx = logging.WithRunID(ctx, "run-123")
		assert.Equal(t, "run-123", logging.RunID(ctx))

		logging.FromContext(ctx).Error().Msg("failed")
		assert.Contains(t, buf.String(), `"run_id":"run-123"`)
	})

	t.Run("RunID empty without value", func(t *testing.T) {
		assert.Equal(t, "", logging.RunID(context.Background()))
	})

	t.Run("WithFields adds custom fields", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logging.New(buf)
		ctx := logging.WithLogger(context.Background(), &logger)

		ctx = logging.WithFields(ctx, map[string]any{
			"dry_run": true,
			"total":   3,
		})
		logging.FromContext(ctx).Error().Msg("plan")

		assert.Contains(t, buf.String(), `"dry_run":true`)
		assert.Contains(t, buf.String(), `"total":3`)
	})

	t.Run("chaining context functions", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logging.New(buf)
		ctx := logging.WithLogger(context.Background(), &logger)

		ctx = logging.WithRepository(ctx, "octo", "demo")
		ctx = logging.WithOperation(ctx, "sync")
		ctx = logging.WithLabel(ctx, "bug")

		logging.FromContext(ctx).Error().Msg("chained")
		out := buf.String()
		assert.Contains(t, out, `"repo":"octo/demo"`)
		assert.Contains(t, out, `"operation":"sync"`)
		assert.Contains(t, out, `"label":"bug"`)
	})
}

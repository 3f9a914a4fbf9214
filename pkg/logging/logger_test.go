package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/labelsync/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	defer logging.SetDefault(original)

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "warning message") {
		t.Errorf("Expected warning message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithRepository(ctx, "octo", "demo")
	ctx = logging.WithOperation(ctx, "sync")

	logger := logging.FromContext(ctx)
	logger.Info().Msg("test message")

	testLogger.AssertContains(t, "octo/demo")
	testLogger.AssertContains(t, "sync")
	testLogger.AssertContains(t, "test message")
}

func TestNewWritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New(buf)

	logger.Error().Str("label", "bug").Msg("action failed")

	output := buf.String()
	if !strings.Contains(output, `"label":"bug"`) {
		t.Errorf("Expected structured field in output, got: %s", output)
	}
	if !strings.Contains(output, `"message":"action failed"`) {
		t.Errorf("Expected message in output, got: %s", output)
	}
}

func TestTestLoggerHelpers(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	testLogger.Info().Msg("first")
	testLogger.Info().Msg("second")

	if got := len(testLogger.Lines()); got != 2 {
		t.Errorf("Expected 2 log lines, got %d", got)
	}
	testLogger.AssertContains(t, "first")
	testLogger.AssertNotContains(t, "third")

	testLogger.Clear()
	if testLogger.Output() != "" {
		t.Errorf("Expected empty output after Clear, got: %s", testLogger.Output())
	}
}

func TestCaptureLoggingForTest(t *testing.T) {
	captured := logging.CaptureLoggingForTest(t)

	logging.Info().Msg("captured message")

	captured.AssertContains(t, "captured message")
}

package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/habitfund/contribmap/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
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
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithCountry(ctx, "kr")
	ctx = logging.WithSheet(ctx, "sheet-123")

	logging.FromContext(ctx).Info().Msg("test message")

	testLogger.AssertContains(t, "kr")
	testLogger.AssertContains(t, "sheet-123")
	testLogger.AssertContains(t, "test message")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	logger := logging.FromContext(context.Background())
	if logger == nil {
		t.Fatal("expected default logger, got nil")
	}

	if logging.FromContext(nil) == nil { //nolint:staticcheck // testing nil-context behavior
		t.Fatal("expected default logger for nil context, got nil")
	}
}

package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/habitfund/contribmap/pkg/logging"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name   string
		level  zerolog.Level
		want   string
		absent string
	}{
		{
			name:  "debug level passes debug",
			level: zerolog.DebugLevel,
			want:  `"level":"debug"`,
		},
		{
			name:   "error level filters info",
			level:  zerolog.ErrorLevel,
			absent: `"level":"info"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := zerolog.New(buf).Level(tt.level).With().Timestamp().Logger()

			logger.Debug().Msg("debug probe")
			logger.Info().Msg("info probe")
			logger.Error().Msg("error probe")

			output := buf.String()
			if tt.want != "" && !strings.Contains(output, tt.want) {
				t.Errorf("expected output to contain %q, got: %s", tt.want, output)
			}
			if tt.absent != "" && strings.Contains(output, tt.absent) {
				t.Errorf("expected output to omit %q, got: %s", tt.absent, output)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Level, "info")
	}
	if cfg.Format != "auto" {
		t.Errorf("Format = %q, want %q", cfg.Format, "auto")
	}
	if cfg.Output != "stderr" {
		t.Errorf("Output = %q, want %q", cfg.Output, "stderr")
	}
}

func TestNewLoggerFromConfigNilUsesDefaults(t *testing.T) {
	logger := logging.NewLoggerFromConfig(nil)
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), zerolog.InfoLevel)
	}
}

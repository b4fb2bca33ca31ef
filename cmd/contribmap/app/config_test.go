package app

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitfund/contribmap/pkg/errors"
)

func TestLoadConfigReadsSheetEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("GOOGLE_SHEET_ID", "  sheet-with-spaces  ")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.example/T000/B000")

	config, err := LoadConfig()
	require.NoError(t, err)

	// Values are trimmed of surrounding whitespace
	assert.Equal(t, "sheet-with-spaces", config.SheetID)
	assert.Equal(t, "https://hooks.slack.example/T000/B000", config.WebhookURL)
}

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("GOOGLE_SHEET_ID", "")
	t.Setenv("SLACK_WEBHOOK_URL", "")
	t.Setenv("CONTRIBMAP_OUTPUT_DIR", "")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "contributors", config.OutputDir)
	assert.Equal(t, "", config.WebhookURL)
}

func TestLoadConfigOutputDirOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("CONTRIBMAP_OUTPUT_DIR", "out/people")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "out/people", config.OutputDir)
}

func TestRequireSheetID(t *testing.T) {
	config := &Config{}
	err := config.RequireSheetID()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfigMissing))
	assert.Contains(t, err.Error(), "GOOGLE_SHEET_ID")

	config.SheetID = "abc"
	assert.NoError(t, config.RequireSheetID())
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "info", config.LogLevel, "empty flag must not clear the configured level")

	config.UpdateFromFlags(false, true, false, "error")
	assert.Equal(t, "error", config.LogLevel)
}

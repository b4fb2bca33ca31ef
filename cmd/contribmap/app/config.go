package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/habitfund/contribmap/pkg/constants"
	"github.com/habitfund/contribmap/pkg/errors"
)

// Config holds the application configuration loaded from flags,
// environment variables, .env files, and the optional config file. It
// is passed explicitly into the components that need it.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Pipeline configuration
	SheetID        string
	WebhookURL     string
	OutputDir      string
	ExceptionsFile string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.contribmap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// The sheet and webhook settings keep their historical env names
	bindEnvs()

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".contribmap")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		ConfigFile: viper.ConfigFileUsed(),

		// Sheet IDs pasted from a browser tend to carry whitespace
		SheetID:        strings.TrimSpace(viper.GetString("sheet_id")),
		WebhookURL:     strings.TrimSpace(viper.GetString("webhook_url")),
		OutputDir:      viper.GetString("output_dir"),
		ExceptionsFile: viper.GetString("exceptions_file"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.OutputDir == "" {
		config.OutputDir = constants.DefaultOutputDir
	}

	return config, nil
}

// RequireSheetID validates that a sheet ID is configured. Called by
// commands that fetch the sheet, before any work begins.
func (c *Config) RequireSheetID() error {
	if c.SheetID == "" {
		return errors.NewConfigError("GOOGLE_SHEET_ID", "environment variable is not set")
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags so
// flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files. Real
// environment variables win over file values, and .env.local wins
// over .env.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindEnvs explicitly binds the environment variables this tool has
// always used, plus the CONTRIBMAP_-prefixed ones, to Viper keys.
func bindEnvs() {
	_ = viper.BindEnv("sheet_id", "GOOGLE_SHEET_ID", "CONTRIBMAP_SHEET_ID")
	_ = viper.BindEnv("webhook_url", "SLACK_WEBHOOK_URL", "CONTRIBMAP_WEBHOOK_URL")
	_ = viper.BindEnv("output_dir", "CONTRIBMAP_OUTPUT_DIR")
	_ = viper.BindEnv("exceptions_file", "CONTRIBMAP_EXCEPTIONS_FILE")
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

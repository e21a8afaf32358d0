package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/review-assistant/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	Server           ServerConfig
	OpenAI           OpenAIConfig
	Poll             PollConfig
	Logging          logger.Config
	Tracing          TracingConfig
	BatchConcurrency int
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

// OpenAIConfig holds the assistant service credential and assistant ids.
type OpenAIConfig struct {
	APIKey            string
	BaseURL           string
	ReviewAssistantID string
	SampleAssistantID string
}

// PollConfig bounds how long and how often a run is polled.
type PollConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	Timeout         time.Duration
}

// TracingConfig toggles span export.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets defaults, and validates required fields.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("REQUEST_TIMEOUT", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	// A front end such as the CLI may already have chosen its own default.
	if !viper.IsSet("LOG_OUTPUT") {
		viper.SetDefault("LOG_OUTPUT", "stdout")
	}
	viper.SetDefault("POLL_INITIAL_INTERVAL", "500ms")
	viper.SetDefault("POLL_MAX_INTERVAL", "5s")
	viper.SetDefault("POLL_MULTIPLIER", 2.0)
	viper.SetDefault("RUN_TIMEOUT", "3m")
	viper.SetDefault("BATCH_CONCURRENCY", 4)
	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_SERVICE_NAME", "review-assistant")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Debug("no .env file loaded", "error", err)
		}
	}

	apiKey := viper.GetString("OPENAI_PRIVATE_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_PRIVATE_KEY must be set")
	}

	// PR_STATIC_ANALYSIS_ID wins over the older single ASSISTANT_ID setting.
	reviewID := viper.GetString("PR_STATIC_ANALYSIS_ID")
	if reviewID == "" {
		reviewID = viper.GetString("ASSISTANT_ID")
	}
	if reviewID == "" {
		return nil, fmt.Errorf("PR_STATIC_ANALYSIS_ID or ASSISTANT_ID must be set")
	}

	sampleID := viper.GetString("SAMPLECODE_GENERATOR_ID")
	if sampleID == "" {
		sampleID = reviewID
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		},
		OpenAI: OpenAIConfig{
			APIKey:            apiKey,
			BaseURL:           viper.GetString("OPENAI_BASE_URL"),
			ReviewAssistantID: reviewID,
			SampleAssistantID: sampleID,
		},
		Poll: PollConfig{
			InitialInterval: viper.GetDuration("POLL_INITIAL_INTERVAL"),
			MaxInterval:     viper.GetDuration("POLL_MAX_INTERVAL"),
			Multiplier:      viper.GetFloat64("POLL_MULTIPLIER"),
			Timeout:         viper.GetDuration("RUN_TIMEOUT"),
		},
		Logging: logger.Config{
			Level:  parseLogLevel(viper.GetString("LOG_LEVEL")),
			Format: strings.ToLower(viper.GetString("LOG_FORMAT")),
			Output: strings.ToLower(viper.GetString("LOG_OUTPUT")),
		},
		Tracing: TracingConfig{
			Enabled:     viper.GetBool("TRACING_ENABLED"),
			ServiceName: viper.GetString("TRACING_SERVICE_NAME"),
		},
		BatchConcurrency: viper.GetInt("BATCH_CONCURRENCY"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values LoadConfig cannot default away. A non-positive
// BatchConcurrency is clamped to 1.
func (c *Config) Validate() error {
	if c.Poll.InitialInterval <= 0 {
		return fmt.Errorf("POLL_INITIAL_INTERVAL must be positive, got %s", c.Poll.InitialInterval)
	}
	if c.Poll.MaxInterval < c.Poll.InitialInterval {
		return fmt.Errorf("POLL_MAX_INTERVAL (%s) must not be below POLL_INITIAL_INTERVAL (%s)",
			c.Poll.MaxInterval, c.Poll.InitialInterval)
	}
	if c.Poll.Multiplier < 1 {
		return fmt.Errorf("POLL_MULTIPLIER must be at least 1, got %g", c.Poll.Multiplier)
	}
	if c.Poll.Timeout <= 0 {
		return fmt.Errorf("RUN_TIMEOUT must be positive, got %s", c.Poll.Timeout)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.Server.RequestTimeout)
	}
	if c.BatchConcurrency <= 0 {
		c.BatchConcurrency = 1
	}
	return nil
}

// parseLogLevel normalizes the configured level, falling back to info.
func parseLogLevel(raw string) string {
	level := strings.ToLower(strings.TrimSpace(raw))
	switch level {
	case "debug", "info", "warn", "error":
		return level
	case "warning":
		return "warn"
	default:
		slog.Warn("unrecognized log level, defaulting to info", "provided", raw)
		return "info"
	}
}

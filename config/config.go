package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mealdex/dietengine/internal/domain"
)

// Config holds all configuration for the engine
type Config struct {
	Taxonomy   TaxonomyConfig
	Classifier ClassifierConfig
	Batch      BatchConfig
	Logging    LoggingConfig
}

// TaxonomyConfig holds taxonomy dataset configuration
type TaxonomyConfig struct {
	// Path to a taxonomy JSON dataset. Empty means the built-in table.
	Path string `mapstructure:"path"`
}

// ClassifierConfig holds classification configuration
type ClassifierConfig struct {
	Policy   string        `mapstructure:"policy"` // "fail_closed" or "fail_open"
	Workers  int           `mapstructure:"workers"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// BatchConfig holds batch-run configuration
type BatchConfig struct {
	SinkRateLimit float64 `mapstructure:"sink_rate_limit"` // labels/sec, 0 = unlimited
	SinkBurst     int     `mapstructure:"sink_burst"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// Load loads configuration from environment variables and config files.
// An explicit configFile path must exist; an empty path falls back to
// searching the standard locations, where absence is fine.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/dietengine/")
	}

	// Environment variable settings
	v.SetEnvPrefix("DIETENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Taxonomy defaults: empty path selects the built-in table
	v.SetDefault("taxonomy.path", "")

	// Classifier defaults
	v.SetDefault("classifier.policy", string(domain.PolicyFailClosed))
	v.SetDefault("classifier.workers", 0) // 0 = one per CPU
	v.SetDefault("classifier.cache_ttl", "720h")

	// Batch defaults
	v.SetDefault("batch.sink_rate_limit", 0.0)
	v.SetDefault("batch.sink_burst", 1)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// validate validates the configuration
func validate(config *Config) error {
	if _, err := domain.ParsePolicy(config.Classifier.Policy); err != nil {
		return err
	}

	if config.Classifier.Workers < 0 {
		return fmt.Errorf("classifier workers must be >= 0, got: %d", config.Classifier.Workers)
	}

	if config.Batch.SinkRateLimit < 0 {
		return fmt.Errorf("batch sink rate limit must be >= 0, got: %v", config.Batch.SinkRateLimit)
	}

	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		return fmt.Errorf("logging format must be 'console' or 'json', got: %s", config.Logging.Format)
	}

	return nil
}

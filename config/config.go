package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Gemini      GeminiConfig
	Recommender RecommenderConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeminiConfig holds Gemini API configuration. An empty API key is not an
// error: the service runs in degraded mode and serves locally generated copy.
type GeminiConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RecommenderConfig holds recommendation pipeline configuration
type RecommenderConfig struct {
	SimilarLimit     int     `mapstructure:"similar_limit"`
	AlternativeLimit int     `mapstructure:"alternative_limit"`
	MinSimilarity    float64 `mapstructure:"min_similarity"`
	Debug            bool    `mapstructure:"debug"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/ecoswap/")

	// Environment variable settings
	v.SetEnvPrefix("ECOSWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
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
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.model", "gemini-pro")
	v.SetDefault("gemini.timeout", "30s")

	// Recommender defaults
	v.SetDefault("recommender.similar_limit", 5)
	v.SetDefault("recommender.alternative_limit", 2)
	v.SetDefault("recommender.min_similarity", 15)
	v.SetDefault("recommender.debug", false)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case "development", "test", "production":
	default:
		return fmt.Errorf("environment must be development, test, or production, got: %s", config.Server.Environment)
	}

	if config.Recommender.SimilarLimit <= 0 {
		return fmt.Errorf("recommender similar_limit must be positive, got: %d", config.Recommender.SimilarLimit)
	}

	if config.Recommender.AlternativeLimit <= 0 {
		return fmt.Errorf("recommender alternative_limit must be positive, got: %d", config.Recommender.AlternativeLimit)
	}

	if config.Gemini.APIKey != "" && config.Gemini.BaseURL == "" {
		return fmt.Errorf("gemini base_url is required when an API key is set")
	}

	return nil
}

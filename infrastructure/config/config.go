package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"skilltree-backend/pkg/utils"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `validate:"required"`
	Environment   string `validate:"oneof=development staging production"`

	// Remote graph service
	GraphServiceURL string `validate:"required,url"`

	// EntryNodeID is the fixed "no skills yet" entry node; it is supplied
	// as configuration and never discovered from the graph
	EntryNodeID string `validate:"required"`

	// RequestTimeout bounds each call to the graph service
	RequestTimeout time.Duration

	// Logging
	LogLevel string

	// Feature flags
	EnableCORS    bool
	EnableMetrics bool

	// AllowedOrigin is the visualizer frontend's origin for CORS
	AllowedOrigin string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:   getEnv("SERVER_ADDRESS", ":8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		GraphServiceURL: getEnv("GRAPH_SERVICE_URL", "http://localhost:9090"),
		EntryNodeID:     getEnv("ENTRY_NODE_ID", "E"),
		RequestTimeout:  time.Duration(getEnvInt("REQUEST_TIMEOUT_MS", 10000)) * time.Millisecond,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		EnableCORS:      getEnvBool("ENABLE_CORS", true),
		EnableMetrics:   getEnvBool("ENABLE_METRICS", true),
		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_MS must be positive")
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

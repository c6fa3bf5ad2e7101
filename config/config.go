package config

import (
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port int
	Host string
	Env  string // "development" or "production"

	// Minimum log level: debug, info, warn, error, fatal
	LogLevel string

	// Result cache database
	CachePath string

	// OpenAI
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Quality policy overrides
	AcceptScore        int // validation acceptance threshold
	MaxExtractAttempts int // extraction attempt ceiling (total attempts)

	// Optional path to a JSON file of extra forbidden-phrase patterns.
	// Watched for changes; empty disables the file source.
	SlopPatternsPath string
}

var (
	cfg  *Config
	once sync.Once
)

// Get returns the global configuration (singleton)
func Get() *Config {
	once.Do(func() {
		cfg = load()
	})
	return cfg
}

// load reads configuration from environment variables
func load() *Config {
	return &Config{
		// Server
		Port: getEnvInt("PORT", 8080),
		Host: getEnv("HOST", "0.0.0.0"),
		Env:  getEnv("ENV", "development"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Cache
		CachePath: getEnv("VB_CACHE_PATH", "./data/rewrite-cache.sqlite"),

		// OpenAI
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		// Quality policy
		AcceptScore:        getEnvInt("VB_ACCEPT_SCORE", 60),
		MaxExtractAttempts: getEnvInt("VB_EXTRACT_ATTEMPTS", 3),

		SlopPatternsPath: getEnv("VB_SLOP_PATTERNS", ""),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

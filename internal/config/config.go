package config

import (
	"os"
	"strconv"
	"time"

	"github.com/smartcity/traffic-analyzer/internal/llm"
	"github.com/smartcity/traffic-analyzer/internal/service"
)

// Config holds all application configuration. It is read once at startup.
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	LocationsFile string

	IncidentCount  int
	RandomSeed     uint64
	InsightTimeout time.Duration

	Bedrock llm.Config
}

// Load loads configuration from environment variables with defaults.
// Missing AWS credentials are allowed; they only matter when a question is asked.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("GO_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LocationsFile: getEnv("LOCATIONS_FILE", ""),

		IncidentCount:  getEnvInt("INCIDENT_COUNT", service.DefaultIncidentCount),
		RandomSeed:     getEnvUint("RANDOM_SEED", 0),
		InsightTimeout: getEnvDuration("INSIGHT_TIMEOUT", service.DefaultInsightTimeout),

		Bedrock: llm.Config{
			AccessKey: getEnv("AWS_ACCESS_KEY", ""),
			SecretKey: getEnv("AWS_SECRET_KEY", ""),
			Region:    getEnv("AWS_REGION", "us-east-1"),
			ModelID:   getEnv("BEDROCK_MODEL_ID", "meta.llama3-70b-instruct-v1:0"),
		},
	}
}

// IsDevelopment reports whether the process runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value, err := strconv.ParseUint(os.Getenv(key), 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

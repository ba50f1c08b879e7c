package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the application.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Identity
	JWTSecret string `env:"JWT_SECRET"`

	// Hospital discovery
	DiscoveryCacheTTL time.Duration `env:"DISCOVERY_CACHE_TTL" envDefault:"5m"`
	GeocodeCacheTTL   time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"10m"`

	// Handoff delivery and retry policy
	MaxCommunicationAttempts int           `env:"MAX_COMMUNICATION_ATTEMPTS" envDefault:"3"`
	RetryWindow              time.Duration `env:"RETRY_WINDOW" envDefault:"5m"`
	RetryScanSchedule        string        `env:"RETRY_SCAN_SCHEDULE" envDefault:"* * * * *"`
	AcknowledgmentTimeout    time.Duration `env:"ACK_TIMEOUT" envDefault:"10m"`
	TimeoutSweepSchedule     string        `env:"TIMEOUT_SWEEP_SCHEDULE" envDefault:"* * * * *"`

	// Outbound hospital channels
	HospitalAPITimeout time.Duration `env:"HOSPITAL_API_TIMEOUT" envDefault:"10s"`
	WebhookTimeout     time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`
	WebhookSecret      string        `env:"WEBHOOK_SECRET"`

	// SMS provider
	SMSBaseURL  string `env:"SMS_BASE_URL"`
	SMSUsername string `env:"SMS_USERNAME" envDefault:"sandbox"`
	SMSAPIKey   string `env:"SMS_API_KEY"`
	SMSSenderID string `env:"SMS_SENDER_ID" envDefault:"HAVEN"`

	// Geocoding and travel-time provider
	MapsBaseURL string `env:"MAPS_BASE_URL"`
	MapsAPIKey  string `env:"MAPS_API_KEY"`

	// First-aider notification queue
	NotifyMaxRetries int           `env:"NOTIFY_MAX_RETRIES" envDefault:"3"`
	NotifyBaseDelay  time.Duration `env:"NOTIFY_BASE_DELAY" envDefault:"2s"`

	// Stats Config
	StatsWindowDays int `env:"STATS_WINDOW_DAYS" envDefault:"7"`
}

// LoadConfig reads settings from environment variables and an optional
// .env file.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; anything else is a real error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),
		JWTSecret:   os.Getenv("JWT_SECRET"),

		DiscoveryCacheTTL: getEnvAsDuration("DISCOVERY_CACHE_TTL", 5*time.Minute),
		GeocodeCacheTTL:   getEnvAsDuration("GEOCODE_CACHE_TTL", 10*time.Minute),

		MaxCommunicationAttempts: getEnvAsInt("MAX_COMMUNICATION_ATTEMPTS", 3),
		RetryWindow:              getEnvAsDuration("RETRY_WINDOW", 5*time.Minute),
		RetryScanSchedule:        getEnv("RETRY_SCAN_SCHEDULE", "* * * * *"),
		AcknowledgmentTimeout:    getEnvAsDuration("ACK_TIMEOUT", 10*time.Minute),
		TimeoutSweepSchedule:     getEnv("TIMEOUT_SWEEP_SCHEDULE", "* * * * *"),

		HospitalAPITimeout: getEnvAsDuration("HOSPITAL_API_TIMEOUT", 10*time.Second),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 10*time.Second),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),

		SMSBaseURL:  getEnv("SMS_BASE_URL", "https://api.africastalking.com/version1"),
		SMSUsername: getEnv("SMS_USERNAME", "sandbox"),
		SMSAPIKey:   os.Getenv("SMS_API_KEY"),
		SMSSenderID: getEnv("SMS_SENDER_ID", "HAVEN"),

		MapsBaseURL: getEnv("MAPS_BASE_URL", "https://maps.googleapis.com/maps/api"),
		MapsAPIKey:  os.Getenv("MAPS_API_KEY"),

		NotifyMaxRetries: getEnvAsInt("NOTIFY_MAX_RETRIES", 3),
		NotifyBaseDelay:  getEnvAsDuration("NOTIFY_BASE_DELAY", 2*time.Second),

		StatsWindowDays: getEnvAsInt("STATS_WINDOW_DAYS", 7),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable parsed as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable parsed as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the entire application configuration.
// Populated from environment variables; .env is loaded by main via godotenv.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	MinIO    MinIOConfig
	Spotify  SpotifyConfig
	Calendar CalendarConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int32
	MinConns       int32
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string // soundstories
	UseSSL    bool
}

type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string // overridable for tests
	APIURL       string
	SearchLimit  int
}

// CalendarConfig carries the tunables of the feed generator.
// The event duration and past-list caps were hardcoded in early versions;
// they are configuration now, with the original values as defaults.
type CalendarConfig struct {
	FeedObjectKey   string        // fixed object key, the subscription URL never changes
	EventDuration   time.Duration // nominal "listening window" per event
	AdminPastLimit  int           // past entries shown in the admin view
	PublicPastLimit int           // past entries shown on the public listing
}

type AdminConfig struct {
	Email    string // bootstrap admin, seeded at startup if absent
	Name     string
	Password string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "SoundStories API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", ""),
			Database:       getEnv("DB_NAME", "soundstories"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       int32(getEnvInt("DB_MAX_CONNS", 25)),
			MinConns:       int32(getEnvInt("DB_MIN_CONNS", 5)),
			MaxRetries:     getEnvInt("DB_MAX_RETRIES", 3),
			RetryDelay:     time.Duration(getEnvInt("DB_RETRY_DELAY_MS", 500)) * time.Millisecond,
			ConnectTimeout: time.Duration(getEnvInt("DB_CONNECT_TIMEOUT_S", 10)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "soundstories"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Spotify: SpotifyConfig{
			ClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
			ClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
			TokenURL:     getEnv("SPOTIFY_TOKEN_URL", "https://accounts.spotify.com/api/token"),
			APIURL:       getEnv("SPOTIFY_API_URL", "https://api.spotify.com"),
			SearchLimit:  getEnvInt("SPOTIFY_SEARCH_LIMIT", 8),
		},
		Calendar: CalendarConfig{
			FeedObjectKey:   getEnv("CALENDAR_FEED_KEY", "calendar/soundstories.ics"),
			EventDuration:   time.Duration(getEnvInt("CALENDAR_EVENT_MINUTES", 60)) * time.Minute,
			AdminPastLimit:  getEnvInt("CALENDAR_ADMIN_PAST_LIMIT", 10),
			PublicPastLimit: getEnvInt("CALENDAR_PUBLIC_PAST_LIMIT", 50),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Name:     getEnv("ADMIN_NAME", "SoundStories Admin"),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings the app cannot run without
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Admin.Password == "" {
			return fmt.Errorf("ADMIN_PASSWORD must be set in production")
		}
	}
	if c.Calendar.AdminPastLimit <= 0 || c.Calendar.PublicPastLimit <= 0 {
		return fmt.Errorf("calendar past limits must be positive")
	}
	if c.Calendar.EventDuration <= 0 {
		return fmt.Errorf("calendar event duration must be positive")
	}
	return nil
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	Environment          string
	HTTPPort             string
	DatabaseURL          string
	AuthSecret           string
	TokenTTL             time.Duration
	MediaEndpoint        string
	MediaRegion          string
	MediaBucket          string
	MediaAccessKey       string
	MediaSecretKey       string
	MediaBaseURL         string
	ServiceName          string
	RateLimitRPM         int
	TelemetryEndpoint    string
	TelemetryInsecure    bool
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSAllowCredentials bool
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment:          getEnv("APP_ENV", "development"),
		HTTPPort:             getEnv("HTTP_PORT", "3000"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		AuthSecret:           os.Getenv("AUTH_SECRET"),
		TokenTTL:             getDuration("TOKEN_TTL", 24*time.Hour),
		MediaEndpoint:        os.Getenv("MEDIA_S3_ENDPOINT"),
		MediaRegion:          getEnv("MEDIA_S3_REGION", "eu-central-1"),
		MediaBucket:          os.Getenv("MEDIA_S3_BUCKET"),
		MediaAccessKey:       os.Getenv("MEDIA_S3_ACCESS_KEY"),
		MediaSecretKey:       os.Getenv("MEDIA_S3_SECRET_KEY"),
		MediaBaseURL:         os.Getenv("MEDIA_BASE_URL"),
		ServiceName:          getEnv("SERVICE_NAME", "huddle-api"),
		RateLimitRPM:         getInt("RATE_LIMIT_RPM", 600),
		TelemetryEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		TelemetryInsecure:    getBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		CORSAllowedOrigins:   getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		CORSAllowedMethods:   getList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		CORSAllowedHeaders:   getList("CORS_ALLOWED_HEADERS", []string{"Authorization", "Content-Type"}),
		CORSAllowCredentials: getBool("CORS_ALLOW_CREDENTIALS", false),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.AuthSecret == "" {
		return Config{}, fmt.Errorf("AUTH_SECRET is required")
	}
	if cfg.MediaBucket == "" {
		return Config{}, fmt.Errorf("MEDIA_S3_BUCKET is required")
	}

	port, err := strconv.Atoi(cfg.HTTPPort)
	if err != nil {
		return Config{}, fmt.Errorf("HTTP_PORT must be an integer")
	}
	if port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("HTTP_PORT must be a valid port number")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}

func getInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		switch strings.ToLower(v) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getList(key string, def []string) []string {
	if v, ok := os.LookupEnv(key); ok {
		parts := strings.Split(v, ",")
		var cleaned []string
		for _, p := range parts {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				cleaned = append(cleaned, trimmed)
			}
		}
		if len(cleaned) > 0 {
			return cleaned
		}
	}
	return def
}

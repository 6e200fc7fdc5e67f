package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// win over it (godotenv does not override existing ones).
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address
//	DATABASE_DSN          PostgreSQL DSN
//	JWT_ACCESS_SECRET     access-token signing secret
//	JWT_REFRESH_SECRET    refresh-token signing secret
//	JWT_ACCESS_EXPIRY     access-token validity, Go duration ("15m")
//	JWT_REFRESH_EXPIRY    refresh-token validity, Go duration ("168h")
//	CORS_ALLOWED_ORIGINS  comma-separated origins
func parseEnv(config *Config) {
	_ = godotenv.Load()

	config.EndpointAddr = getEnv("ADDRESS", config.EndpointAddr)
	config.DatabaseDSN = getEnv("DATABASE_DSN", config.DatabaseDSN)
	config.AccessTokenSecret = getEnv("JWT_ACCESS_SECRET", config.AccessTokenSecret)
	config.RefreshTokenSecret = getEnv("JWT_REFRESH_SECRET", config.RefreshTokenSecret)
	config.AccessTokenValidityDuration = getEnvAsDuration("JWT_ACCESS_EXPIRY", config.AccessTokenValidityDuration)
	config.RefreshTokenValidityDuration = getEnvAsDuration("JWT_REFRESH_EXPIRY", config.RefreshTokenValidityDuration)
	config.CORSAllowedOrigins = getEnv("CORS_ALLOWED_ORIGINS", config.CORSAllowedOrigins)
}

// getEnv returns the environment variable value or the fallback when unset.
func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

// getEnvAsDuration parses the environment variable as a Go duration,
// keeping the fallback on absence or parse failure.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

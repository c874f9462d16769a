package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           int
	AllowedOrigins []string
	JWTSecret      string
	JWTExpiry      time.Duration
}

// MustLoad loads configuration from environment variables. Panics if
// required configuration is missing.
func MustLoad() Config {
	_ = godotenv.Load(".env")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		panic("DATABASE_URL environment variable is required")
	}

	portStr := os.Getenv("PORT")
	port := 8080
	if portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			panic(fmt.Sprintf("invalid PORT value: %s", portStr))
		}
		port = p
	}

	allowedOrigins := []string{"http://localhost:5173"}
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		allowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range allowedOrigins {
			allowedOrigins[i] = strings.TrimSpace(origin)
		}
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		panic("JWT_SECRET environment variable is required")
	}

	jwtExpiry := 168 * time.Hour
	if jwtExpiryStr := os.Getenv("JWT_EXPIRY_HOURS"); jwtExpiryStr != "" {
		hours, err := strconv.Atoi(jwtExpiryStr)
		if err != nil {
			panic(fmt.Sprintf("invalid JWT_EXPIRY_HOURS value: %s", jwtExpiryStr))
		}
		jwtExpiry = time.Duration(hours) * time.Hour
	}

	return Config{
		DatabaseURL:    dbURL,
		Port:           port,
		AllowedOrigins: allowedOrigins,
		JWTSecret:      jwtSecret,
		JWTExpiry:      jwtExpiry,
	}
}

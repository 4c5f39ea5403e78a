package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// AppConfig holds the configuration shared by both backends.
type AppConfig struct {
	Host            string
	Port            string
	DBURL           string
	RedisAddress    string
	HospitalAPIURL  string
	InsuranceAPIURL string
}

// Load resolves configuration from environment variables. The listen
// address falls back to 0.0.0.0 and the given default port; the database
// and Redis URLs are mandatory.
func Load(defaultPort string) (*AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = "0.0.0.0"
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}

	return &AppConfig{
		Host:            host,
		Port:            port,
		DBURL:           dbURL,
		RedisAddress:    redisAddress,
		HospitalAPIURL:  getEnvWithDefault("HOSPITAL_API_URL", "http://localhost:5050/api"),
		InsuranceAPIURL: getEnvWithDefault("ENS_BACKEND_API_URL", "http://localhost:8080/api"),
	}, nil
}

// ListenAddress returns the host:port pair the HTTP server binds to.
func (c *AppConfig) ListenAddress() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnvWithDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

package config

import (
	"errors"
	"os"
	"time"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"

	// Matches the development default the service shipped with. Override
	// SESSION_SECRET in any real deployment.
	defaultSessionSecret = "intervu_secret"

	// SessionTTL is how long a signed interview session stays valid.
	SessionTTL = time.Hour
)

// Config carries everything the process reads from the environment. The
// Gemini key is the only hard requirement; the server refuses to start
// without it.
type Config struct {
	GeminiAPIKey  string
	SessionSecret string
	Host          string
	Port          string
}

func Load() (*Config, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is not set")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = defaultSessionSecret
	}

	host := os.Getenv("HOST")
	if host == "" {
		host = defaultHost
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	return &Config{
		GeminiAPIKey:  key,
		SessionSecret: secret,
		Host:          host,
		Port:          port,
	}, nil
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

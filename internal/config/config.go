package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL        string
	SessionSecret      string
	TwitchClientID     string
	TwitchClientSecret string
	// AllowedOrigin is the single origin granted credentialed CORS
	// access; empty means same-origin only.
	AllowedOrigin string
	Port          string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error in production)
	_ = godotenv.Load()

	dbURL := os.Getenv("POSTGRES_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL is required")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	clientID := os.Getenv("TWITCH_CLIENT_ID")
	clientSecret := os.Getenv("TWITCH_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		fmt.Println("Warning: TWITCH_CLIENT_ID or TWITCH_CLIENT_SECRET not set, Twitch account linking will not work")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	return &Config{
		PostgresURL:        dbURL,
		SessionSecret:      secret,
		TwitchClientID:     clientID,
		TwitchClientSecret: clientSecret,
		AllowedOrigin:      os.Getenv("ALLOWED_ORIGIN"),
		Port:               port,
	}, nil
}

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultPort = "8080"

// Config holds application configuration sourced from environment variables.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	Env         string
}

// Load reads environment variables and returns a populated Config.
// A local .env file is loaded best-effort first; production should use real
// env injection.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Port:        os.Getenv("APP_PORT"),
		Env:         os.Getenv("APP_ENV"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	if cfg.DatabaseURL == "" {
		log.Print("warning: DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		log.Print("warning: JWT_SECRET is not set")
	}

	return cfg
}

// IsDev reports whether the app runs in development mode, which enables
// startup conveniences such as automatic migrations.
func (c Config) IsDev() bool {
	return c.Env == "development"
}

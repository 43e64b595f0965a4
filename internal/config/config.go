package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	PostgresDSN string
	AdminEmail  string
	AdminPass   string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),
		// empty DSN keeps the in-memory stores; set it to switch the
		// product and order repositories to PostgreSQL
		PostgresDSN: getenv("POSTGRES_DSN", ""),
		AdminEmail:  getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPass:   getenv("ADMIN_PASSWORD", "admin"),
	}
	log.Printf("[config] HTTP_ADDR=%s", cfg.HTTPAddr)
	if cfg.PostgresDSN != "" {
		log.Printf("[config] POSTGRES_DSN=set")
	}
	return cfg
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	DatabaseDSN     string
	JWTSecret       string
	SeedData        bool
	MaxRequestBytes int64
}

func Load() Config {
	// local development convenience; ignored when no .env file exists
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}
	cfg := Config{
		HTTPAddr:        getEnv("TAPROOM_HTTP_ADDR", ":8080"),
		DatabaseDSN:     getEnv("TAPROOM_DB_DSN", "file:taproom.db?cache=shared&mode=rwc"),
		JWTSecret:       getEnv("TAPROOM_JWT_SECRET", "dev-secret-change"),
		SeedData:        getEnvBool("TAPROOM_SEED_DATA", true),
		MaxRequestBytes: getEnvInt64("TAPROOM_MAX_REQUEST_BYTES", 1<<20),
	}
	if cfg.JWTSecret == "dev-secret-change" {
		log.Println("WARNING: using development JWT secret; set TAPROOM_JWT_SECRET")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

package config

import (
	"os"
	"strconv"
)

// Storage driver names accepted in STORAGE_DRIVER
const (
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config holds the runtime configuration, read from environment variables.
type Config struct {
	Port          string // HTTP port, PORT (default 8080)
	Env           string // ENV, "development" or "production"
	StorageDriver string // STORAGE_DRIVER: file | redis | postgres
	DataDir       string // DATA_DIR for the file driver
	RedisAddr     string // REDIS_ADDR for the redis driver
	RedisPassword string // REDIS_PASSWORD (optional)
	RedisDB       int    // REDIS_DB (default 0)
	DBURL         string // DB_URL for the postgres driver
	StaticDir     string // STATIC_DIR with the built frontend bundle
}

// Load reads the configuration from the environment. Every value has a
// local-development default; only the postgres driver demands a DSN, which
// is checked where the adapter is constructed.
func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverFile),
		DataDir:       getEnv("DATA_DIR", "data"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		DBURL:         os.Getenv("DB_URL"),
		StaticDir:     getEnv("STATIC_DIR", "dist"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

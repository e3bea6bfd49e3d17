package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultCacheTTL = 20 * time.Second
	defaultMediaDir = "media"
)

// Init loads .env and validates the settings the app cannot run without.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	for _, key := range []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET"} {
		if os.Getenv(key) == "" {
			Logger.Fatal(key + " is not set")
		}
	}
}

// CacheTTL is the lifetime of cached feed pages.
func CacheTTL() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("CACHE_TTL_SECONDS"))
	if err != nil || seconds <= 0 {
		return defaultCacheTTL
	}
	return time.Duration(seconds) * time.Second
}

// MediaDir is where uploaded post images are stored.
func MediaDir() string {
	if dir := os.Getenv("MEDIA_DIR"); dir != "" {
		return dir
	}
	return defaultMediaDir
}

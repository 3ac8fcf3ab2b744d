package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the app needs at startup. It is built once by Load
// and passed down explicitly; nothing reads the environment after that.
type Config struct {
	Port        string
	JWTSecret   string
	DBDriver    string // "postgres" or "sqlite"
	DatabaseURL string
	SQLitePath  string
	BcryptCost  int
}

// Load reads configuration from the environment, with .env support.
func Load() Config {
	// Ignore error if .env file doesn't exist (e.g. in production)
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "photos.db"),
		BcryptCost:  getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}

	if cfg.DatabaseURL == "" {
		// Fallback to individual vars
		cfg.DatabaseURL = "postgres://" + getEnv("POSTGRES_USER", "postgres") + ":" +
			getEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			getEnv("POSTGRES_HOST", "localhost") + ":" +
			getEnv("POSTGRES_PORT", "5432") + "/" +
			getEnv("POSTGRES_DB", "photodb") + "?sslmode=disable"
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns the value of an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DBHost     string
	DBPort     string
	DBDatabase string

	RedisAddr     string
	RedisPassword string

	FolderPath string
}

// Load reads configuration from the environment once at startup.
// A .env file is honoured when present but never required.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		AppPort: getenv("APP_PORT", "5000"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "27017"),
		DBDatabase: getenv("DB_DATABASE", "files_manager"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		FolderPath: getenv("FOLDER_PATH", "/tmp/files_manager"),
	}

	return cfg
}

// MongoURI builds the connection string for the document store.
func (c Config) MongoURI() string {
	return "mongodb://" + c.DBHost + ":" + c.DBPort
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

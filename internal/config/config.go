package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port          string
	DatabaseURL   string
	RedisAddr     string
	RabbitURL     string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	TokenTTL      time.Duration
}

// Load reads .env when present; in containers the real environment wins.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	dbURL := getEnv("DATABASE_URL", "")
	if dbURL == "" {
		dbURL = fmt.Sprintf("postgres://%s:%s@%s:5432/%s?sslmode=disable",
			getEnv("DB_USER", "takaflow"),
			getEnv("DB_PASSWORD", "secret123"),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_NAME", "takaflow"),
		)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   dbURL,
		RedisAddr:     getEnv("REDIS_HOST", "localhost") + ":6379",
		RabbitURL: fmt.Sprintf("amqp://%s:%s@%s:5672/",
			getEnv("RABBITMQ_USER", "guest"),
			getEnv("RABBITMQ_PASS", "guest"),
			getEnv("RABBITMQ_HOST", "localhost"),
		),
		MongoURI: fmt.Sprintf("mongodb://%s:%s@%s:27017",
			getEnv("MONGO_USER", "root"),
			getEnv("MONGO_PASS", "secret123"),
			getEnv("MONGO_HOST", "localhost"),
		),
		MongoDatabase: getEnv("MONGO_DB", "takaflow_audit"),
		JWTSecret:     getEnv("ACCESS_TOKEN_SECRET", ""),
		TokenTTL:      time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

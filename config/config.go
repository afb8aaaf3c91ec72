package config

import (
	"os"
	"strings"

	"smartmenu-service/internal/database"

	"go.uber.org/zap"
)

type Config struct {
	Port string
	DB   DB

	// Kafka is optional; empty brokers keep notifications in-process only.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string
}

type DB struct {
	database.Config
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port: getEnv("APP_PORT", log),
		DB: DB{
			Config: database.Config{
				Host:     getEnv("DB_HOST", log),
				Port:     getEnv("DB_PORT", log),
				User:     getEnv("DB_USER", log),
				Password: getEnv("DB_PASSWORD", log),
				Name:     getEnv("DB_NAME", log),
				SSLMode:  getEnv("DB_SSLMODE", log),
			},
		},
		KafkaBrokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnvDefault("KAFKA_TOPIC_ORDERS", "orders.created"),
		KafkaGroupID: getEnvDefault("KAFKA_GROUP_ID", "smartmenu-admin"),
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	RedisURL  string
	RedisHost string
	RedisPort string

	KafkaEnabled bool
	KafkaBrokers []string
	EventsTopic  string
	RefreshTopic string
	RefreshGroup string

	LogLevel string
	Port     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded (ok for prod)")
	}
	return FromEnv()
}

// FromEnv reads the process environment without touching .env files.
func FromEnv() *Config {
	return &Config{
		RedisURL:     os.Getenv("REDIS_URL"),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		KafkaEnabled: getBool("KAFKA_ENABLED", false),
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
		EventsTopic:  getEnv("PAGE_EVENTS_TOPIC", "page-events"),
		RefreshTopic: getEnv("PAGE_REFRESH_TOPIC", "page-refresh"),
		RefreshGroup: getEnv("PAGE_REFRESH_GROUP", "page-refresher"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Recommend RecommendConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (d DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers              []string
	TopicForecasts       string
	TopicRates           string
	TopicRecommendations string
	NumPartitions        int
}

type RecommendConfig struct {
	TopN          int
	RunTime       string // HH:MM, local time of the daily ranking run
	RateBatchSize int
	RateFlushWait time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not present)
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "travel_user"),
			Password: getEnv("DB_PASSWORD", "travel_pass"),
			DBName:   getEnv("DB_NAME", "travel_db"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers:              strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			TopicForecasts:       getEnv("KAFKA_TOPIC_FORECASTS", "travel.forecasts"),
			TopicRates:           getEnv("KAFKA_TOPIC_RATES", "travel.fx.rates"),
			TopicRecommendations: getEnv("KAFKA_TOPIC_RECOMMENDATIONS", "travel.recommendations"),
			NumPartitions:        getEnvAsInt("KAFKA_NUM_PARTITIONS", 10),
		},
		Recommend: RecommendConfig{
			TopN:          getEnvAsInt("RECOMMEND_TOP_N", 10),
			RunTime:       getEnv("RECOMMEND_RUN_TIME", "06:00"),
			RateBatchSize: getEnvAsInt("RATE_BATCH_SIZE", 50),
			RateFlushWait: getEnvAsDuration("RATE_FLUSH_WAIT", 10*time.Second),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/bangtaeuk/whereorwhen/internal/analyzer"
	"github.com/bangtaeuk/whereorwhen/internal/cache"
	"github.com/bangtaeuk/whereorwhen/internal/protocol"
	"github.com/bangtaeuk/whereorwhen/internal/queue"
	"github.com/bangtaeuk/whereorwhen/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("Starting Forecast Sync Service...")

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	forecastStore := cache.NewForecastStore(redisClient)

	if err := queue.CreateTopic(cfg.Kafka.Brokers, cfg.Kafka.TopicForecasts, cfg.Kafka.NumPartitions, 1); err != nil {
		log.Printf("Topic setup: %v\n", err)
	}

	consumer := queue.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicForecasts, "forecastsync-group")
	defer consumer.Close()
	fmt.Println("Kafka consumer initialized")

	fmt.Println("\n✓ Forecast Sync Service is running")
	fmt.Println("✓ Press Ctrl+C to stop")

	go func() {
		for {
			msg, err := consumer.Consume(ctx)
			if err != nil {
				log.Printf("Failed to consume message: %v\n", err)
				continue
			}

			update, err := protocol.DecodeForecastUpdate(msg.Value)
			if err != nil {
				log.Printf("Failed to decode message: %v\n", err)
				consumer.Commit(ctx, msg)
				continue
			}

			snap := &analyzer.ForecastSnapshot{
				CityID:               update.CityID,
				ClearRatio:           update.ClearRatio,
				HistoricalClearRatio: update.HistoricalClearRatio,
				FetchedAt:            update.FetchedAt,
			}

			if err := forecastStore.Set(ctx, snap); err != nil {
				log.Printf("Failed to store forecast for %s: %v\n", update.CityID, err)
				continue
			}
			fmt.Printf("Updated forecast for %s (clear ratio %.2f)\n", update.CityID, update.ClearRatio)

			if err := consumer.Commit(ctx, msg); err != nil {
				log.Printf("Failed to commit offset: %v\n", err)
			}
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nShutting down gracefully...")
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bangtaeuk/whereorwhen/internal/database"
	"github.com/bangtaeuk/whereorwhen/internal/queue"
	"github.com/bangtaeuk/whereorwhen/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("Starting Rate Writer Service...")

	// Connect to database
	db, err := database.Connect(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	fmt.Println("Connected to database")

	if err := queue.CreateTopic(cfg.Kafka.Brokers, cfg.Kafka.TopicRates, cfg.Kafka.NumPartitions, 1); err != nil {
		log.Printf("Topic setup: %v\n", err)
	}

	consumer := queue.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicRates, "ratewriter-group")
	defer consumer.Close()
	fmt.Println("Kafka consumer initialized")

	writer := queue.NewRateBatchWriter(consumer, db, cfg.Recommend.RateBatchSize, cfg.Recommend.RateFlushWait)

	ctx := context.Background()
	writer.Start(ctx)

	fmt.Println("\n✓ Rate Writer Service is running")
	fmt.Println("✓ Press Ctrl+C to stop")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nShutting down gracefully...")
	writer.Stop()
}

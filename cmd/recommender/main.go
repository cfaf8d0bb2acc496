package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bangtaeuk/whereorwhen/internal/cache"
	"github.com/bangtaeuk/whereorwhen/internal/database"
	"github.com/bangtaeuk/whereorwhen/internal/protocol"
	"github.com/bangtaeuk/whereorwhen/internal/queue"
	"github.com/bangtaeuk/whereorwhen/internal/recommend"
	"github.com/bangtaeuk/whereorwhen/internal/timer"
	"github.com/bangtaeuk/whereorwhen/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("Starting Recommender Service...")

	// Connect to database
	db, err := database.Connect(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	fmt.Println("Connected to database")

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
	rankingStore := cache.NewRankingStore(redisClient)

	// Create producer for finished rankings
	producer := queue.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicRecommendations)
	defer producer.Close()
	fmt.Println("Recommendation producer initialized")

	gatherer := recommend.NewGatherer(db, db, db, db, forecastStore)
	ranker := recommend.NewRanker(cfg.Recommend.TopN)

	runner := &runner{
		gatherer:     gatherer,
		ranker:       ranker,
		rankingStore: rankingStore,
		producer:     producer,
	}

	// Run once at startup, then daily at the configured time
	runner.run(ctx)

	scheduler := timer.NewScheduler()
	scheduler.Start()
	defer scheduler.Stop()

	scheduleDailyRun(scheduler, runner, cfg.Recommend.RunTime)

	fmt.Println("\n✓ Recommender Service is running")
	fmt.Println("✓ Press Ctrl+C to stop")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nShutting down gracefully...")
}

type runner struct {
	gatherer     *recommend.Gatherer
	ranker       *recommend.Ranker
	rankingStore *cache.RankingStore
	producer     *queue.Producer
}

// run executes one full ranking cycle: gather inputs, rank, cache the
// snapshot, publish it.
func (r *runner) run(ctx context.Context) {
	today := time.Now()
	runID := uuid.New().String()

	fmt.Printf("\n--- Running ranking %s for %s ---\n", runID, today.Format("2006-01-02"))

	inputs, results := r.gatherer.Gather(ctx, today)
	for _, res := range results {
		if res.Status == recommend.SourceDegraded {
			log.Printf("Input source degraded: %s\n", res)
		} else {
			fmt.Printf("Input source %s\n", res)
		}
	}

	items := r.ranker.Rank(today, inputs)
	if len(items) == 0 {
		fmt.Println("No qualifying candidates today")
	}
	for _, item := range items {
		fmt.Printf("#%d %s (%s) score=%.1f base=%.1f reasons=%v\n",
			item.Rank, item.City.Name, item.Label, item.Score, item.BaseScore, item.Reasons)
	}

	snap := &cache.RankingSnapshot{
		RunID:       runID,
		Date:        today.Format("2006-01-02"),
		GeneratedAt: time.Now(),
		Items:       items,
	}

	if err := r.rankingStore.Save(ctx, snap); err != nil {
		log.Printf("Failed to cache ranking snapshot: %v\n", err)
	}

	msg := &protocol.RecommendationSetMessage{
		RunID:       snap.RunID,
		Date:        snap.Date,
		GeneratedAt: snap.GeneratedAt,
		Items:       items,
	}
	data, err := protocol.EncodeRecommendationSet(msg)
	if err != nil {
		log.Printf("Failed to encode recommendation set: %v\n", err)
		return
	}
	if err := r.producer.Publish(ctx, snap.Date, data); err != nil {
		log.Printf("Failed to publish recommendation set: %v\n", err)
	}

	fmt.Println("--- Ranking complete ---")
}

func scheduleDailyRun(s *timer.Scheduler, r *runner, timeOfDay string) {
	taskID := "daily-ranking"

	var scheduleNext func()
	scheduleNext = func() {
		nextRun, err := nextRunTime(timeOfDay)
		if err != nil {
			log.Fatalf("Failed to calculate daily run time: %v", err)
		}
		fmt.Printf("Next ranking run scheduled for: %s\n", nextRun.Format("2006-01-02 15:04:05"))

		callback := func() {
			r.run(context.Background())
			scheduleNext()
		}

		if err := s.Schedule(taskID, nextRun, callback); err != nil {
			log.Printf("Failed to schedule ranking run: %v\n", err)
		}
	}

	scheduleNext()
}

// nextRunTime calculates the next daily occurrence of timeOfDay (HH:MM)
func nextRunTime(timeOfDay string) (time.Time, error) {
	now := time.Now()

	var hour, minute int
	if _, err := fmt.Sscanf(timeOfDay, "%d:%d", &hour, &minute); err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %s (expected HH:MM)", timeOfDay)
	}

	todayRun := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if now.After(todayRun) {
		return todayRun.AddDate(0, 0, 1), nil
	}
	return todayRun, nil
}

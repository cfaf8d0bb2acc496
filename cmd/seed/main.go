package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/bangtaeuk/whereorwhen/internal/catalog"
	"github.com/bangtaeuk/whereorwhen/internal/database"
	"github.com/bangtaeuk/whereorwhen/pkg/config"
)

func main() {
	migrationsDir := flag.String("migrations", "migrations", "path to SQL migrations directory")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("Seeding reference data...")

	// Connect to database
	db, err := database.Connect(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	fmt.Println("Connected to database")

	if err := db.RunMigrations(*migrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	for i := range catalog.Cities {
		city := catalog.Cities[i]
		if err := db.UpsertCity(ctx, &city); err != nil {
			log.Fatalf("Failed to upsert city %s: %v", city.ID, err)
		}
	}
	fmt.Printf("Seeded %d cities\n", len(catalog.Cities))

	scoreCount := 0
	for cityID, months := range catalog.MonthlySubScores {
		for m, sub := range months {
			row := &database.MonthlyScoreRow{
				CityID:  cityID,
				Month:   m + 1,
				Weather: sub[0],
				Cost:    sub[1],
				Crowd:   sub[2],
				Buzz:    sub[3],
			}
			if err := db.UpsertMonthlyScore(ctx, row); err != nil {
				log.Fatalf("Failed to upsert score %s/%d: %v", cityID, m+1, err)
			}
			scoreCount++
		}
	}
	fmt.Printf("Seeded %d monthly scores\n", scoreCount)

	// Season rows have no natural key, so reseed from scratch
	if _, err := db.ExecContext(ctx, "DELETE FROM seasons"); err != nil {
		log.Fatalf("Failed to clear seasons: %v", err)
	}
	for i := range catalog.Seasons {
		season := catalog.Seasons[i]
		if err := db.InsertSeason(ctx, &season); err != nil {
			log.Fatalf("Failed to insert season %s/%s: %v", season.CityID, season.Name, err)
		}
	}
	fmt.Printf("Seeded %d seasons\n", len(catalog.Seasons))

	fmt.Println("Seeding complete")
}

package analyzer

import (
	"testing"
	"time"
)

func TestForecastBonus_MissingSnapshot(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	bonus := ForecastBonus(now, nil)
	if bonus.Amount != 0 || bonus.Reason != "" {
		t.Errorf("Expected zero bonus for missing snapshot, got %+v", bonus)
	}
}

func TestForecastBonus_StaleSnapshot(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Strongly favorable ratios must still be ignored once stale
	snap := &ForecastSnapshot{
		CityID:               "tokyo",
		ClearRatio:           0.9,
		HistoricalClearRatio: 0.3,
		FetchedAt:            now.Add(-7 * time.Hour),
	}

	bonus := ForecastBonus(now, snap)
	if bonus.Amount != 0 || bonus.Reason != "" {
		t.Errorf("Expected zero bonus for stale snapshot, got %+v", bonus)
	}
}

func TestForecastBonus_FreshnessBoundary(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	snap := &ForecastSnapshot{
		CityID:               "tokyo",
		ClearRatio:           0.8,
		HistoricalClearRatio: 0.5,
		FetchedAt:            now.Add(-ForecastFreshness),
	}

	// Exactly six hours old is still fresh
	bonus := ForecastBonus(now, snap)
	if bonus.Amount == 0 {
		t.Errorf("Expected non-zero bonus at freshness boundary, got %+v", bonus)
	}
}

func TestForecastBonus_DiffBelowThreshold(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	snap := &ForecastSnapshot{
		CityID:               "tokyo",
		ClearRatio:           0.55,
		HistoricalClearRatio: 0.5,
		FetchedAt:            now.Add(-1 * time.Hour),
	}

	bonus := ForecastBonus(now, snap)
	if bonus.Amount != 0 {
		t.Errorf("Expected zero bonus for diff below threshold, got %+v", bonus)
	}
}

func TestForecastBonus_Scaling(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		clear      float64
		historical float64
		expected   float64
	}{
		{"moderate improvement", 0.62, 0.50, 0.4}, // 0.12*3 = 0.36 -> 0.4
		{"large improvement capped", 0.80, 0.50, 0.5},
		{"just past threshold", 0.61, 0.50, 0.3}, // 0.11*3 = 0.33 -> 0.3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &ForecastSnapshot{
				CityID:               "tokyo",
				ClearRatio:           tt.clear,
				HistoricalClearRatio: tt.historical,
				FetchedAt:            now.Add(-1 * time.Hour),
			}

			bonus := ForecastBonus(now, snap)
			if bonus.Amount != tt.expected {
				t.Errorf("Expected bonus %v, got %v", tt.expected, bonus.Amount)
			}
			if bonus.Amount > MaxForecastBonus {
				t.Errorf("Bonus %v exceeds cap %v", bonus.Amount, MaxForecastBonus)
			}
		})
	}
}

func TestForecastBonus_ReasonFormat(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	snap := &ForecastSnapshot{
		CityID:               "tokyo",
		ClearRatio:           0.72,
		HistoricalClearRatio: 0.50,
		FetchedAt:            now.Add(-1 * time.Hour),
	}

	bonus := ForecastBonus(now, snap)
	if bonus.Reason != "forecast shows 72% clear days" {
		t.Errorf("Unexpected reason: %q", bonus.Reason)
	}
}

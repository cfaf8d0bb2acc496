package analyzer

import (
	"fmt"
	"math"
	"time"

	"github.com/bangtaeuk/whereorwhen/internal/scoring"
)

// ForecastSnapshot is a cached short-range forecast for one city: the
// fraction of clear days in the forecast window, the matching
// historical baseline, and when the forecast was fetched.
type ForecastSnapshot struct {
	CityID               string    `json:"city_id"`
	ClearRatio           float64   `json:"clear_ratio"`
	HistoricalClearRatio float64   `json:"historical_clear_ratio"`
	FetchedAt            time.Time `json:"fetched_at"`
}

// ForecastFreshness is how long a snapshot stays usable. Older
// snapshots are treated as absent, never as errors.
const ForecastFreshness = 6 * time.Hour

const forecastDiffThreshold = 0.1

// Fresh reports whether the snapshot is recent enough to influence a
// ranking at the given instant.
func (f *ForecastSnapshot) Fresh(now time.Time) bool {
	return now.Sub(f.FetchedAt) <= ForecastFreshness
}

// ForecastBonus rewards a fresh forecast that is meaningfully sunnier
// than the historical norm. A missing or stale snapshot yields zero.
// The x3 scaling lets a 16.7-point clear-ratio improvement reach the
// 0.5 cap.
func ForecastBonus(now time.Time, snap *ForecastSnapshot) Bonus {
	if snap == nil || !snap.Fresh(now) {
		return Bonus{}
	}

	diff := snap.ClearRatio - snap.HistoricalClearRatio
	if diff <= forecastDiffThreshold {
		return Bonus{}
	}

	amount := math.Min(MaxForecastBonus, scoring.Round1(diff*3))
	percent := int(math.Round(snap.ClearRatio * 100))
	return Bonus{
		Amount: amount,
		Reason: fmt.Sprintf("forecast shows %d%% clear days", percent),
	}
}

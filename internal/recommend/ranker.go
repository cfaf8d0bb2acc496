package recommend

import (
	"sort"
	"time"

	"github.com/bangtaeuk/whereorwhen/internal/analyzer"
	"github.com/bangtaeuk/whereorwhen/internal/scoring"
)

// City is the engine's read-only view of one catalog entry.
type City struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	NameLocal    string  `json:"name_local,omitempty"`
	CountryCode  string  `json:"country_code"`
	CurrencyCode string  `json:"currency_code"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}

// Inputs bundles the read-only datasets one ranking run consumes.
// Missing entries degrade to zero bonuses or omitted candidates,
// never to errors.
type Inputs struct {
	Cities     []City
	BaseScores map[string]map[int]scoring.Breakdown
	Exchange   map[string]analyzer.ExchangeSeries
	Seasons    map[string][]analyzer.Season
	Forecasts  map[string]*analyzer.ForecastSnapshot
}

// BonusBreakdown itemizes the per-analyzer bonus amounts applied on top
// of the base score.
type BonusBreakdown struct {
	Exchange   float64 `json:"exchange"`
	Forecast   float64 `json:"forecast"`
	Season     float64 `json:"season"`
	Timeliness float64 `json:"timeliness"`
}

// Recommendation is one ranked (city, week) result. Instances are
// built once per run and never mutated afterwards.
type Recommendation struct {
	City      City           `json:"city"`
	Start     time.Time      `json:"start"`
	End       time.Time      `json:"end"`
	Label     string         `json:"label"`
	Score     float64        `json:"score"`
	BaseScore float64        `json:"base_score"`
	Grade     scoring.Grade  `json:"grade"`
	Bonuses   BonusBreakdown `json:"bonuses"`
	Reasons   []string       `json:"reasons"`
	Rank      int            `json:"rank"`
}

const (
	defaultTopN     = 10
	maxReasons      = 3
	subScoreHighBar = 8.0
)

// Ranker evaluates the city x upcoming-week matrix and produces the
// globally best travel timings.
type Ranker struct {
	topN int
}

// NewRanker creates a ranker returning at most topN results. Values
// below 1 fall back to the default of 10.
func NewRanker(topN int) *Ranker {
	if topN < 1 {
		topN = defaultTopN
	}
	return &Ranker{topN: topN}
}

// Rank builds the 12-week candidate matrix, scores every (city, week)
// pair that has a base score for the week's month, keeps the single
// best week per city, and returns the top N sorted by score descending
// with ranks 1..N. Given identical inputs and today, the output is
// fully deterministic: iteration is city-major then week-ascending, and
// on equal scores the earliest-evaluated week wins the per-city dedup.
func (r *Ranker) Rank(today time.Time, in Inputs) []Recommendation {
	weeks := UpcomingWeeks(today)

	winners := make([]Recommendation, 0, len(in.Cities))
	for _, city := range in.Cities {
		months := in.BaseScores[city.ID]
		if len(months) == 0 {
			continue
		}

		var best *Recommendation
		for _, week := range weeks {
			base, ok := months[week.Month]
			if !ok {
				// No data for this month: omit the candidate.
				continue
			}

			rec := r.evaluate(today, city, week, base, in)
			if best == nil || rec.Score > best.Score {
				best = &rec
			}
		}

		if best != nil {
			winners = append(winners, *best)
		}
	}

	sort.SliceStable(winners, func(i, j int) bool {
		return winners[i].Score > winners[j].Score
	})

	if len(winners) > r.topN {
		winners = winners[:r.topN]
	}
	for i := range winners {
		winners[i].Rank = i + 1
	}
	return winners
}

func (r *Ranker) evaluate(today time.Time, city City, week WeekRange, base scoring.Breakdown, in Inputs) Recommendation {
	exchange := analyzer.ExchangeBonus(today, in.Exchange[city.CurrencyCode])
	forecast := analyzer.ForecastBonus(today, in.Forecasts[city.ID])
	season := analyzer.SeasonBonus(today, week.Start, in.Seasons[city.ID])
	timeliness := analyzer.TimelinessBonus(week.WeeksFromNow)

	score := scoring.Round1(base.Total + exchange.Amount + forecast.Amount + season.Amount + timeliness.Amount)

	return Recommendation{
		City:      city,
		Start:     week.Start,
		End:       week.End,
		Label:     week.Label,
		Score:     score,
		BaseScore: base.Total,
		Grade:     scoring.GradeFor(score),
		Bonuses: BonusBreakdown{
			Exchange:   exchange.Amount,
			Forecast:   forecast.Amount,
			Season:     season.Amount,
			Timeliness: timeliness.Amount,
		},
		Reasons: collectReasons(base, exchange, forecast, season, timeliness),
	}
}

// collectReasons gathers candidate reasons in fixed priority order
// (exchange, forecast, season, timeliness, then the two base-breakdown
// extras) and truncates to three.
func collectReasons(base scoring.Breakdown, bonuses ...analyzer.Bonus) []string {
	reasons := make([]string, 0, maxReasons)
	for _, b := range bonuses {
		if b.Reason != "" {
			reasons = append(reasons, b.Reason)
		}
	}
	if base.Weather >= subScoreHighBar {
		reasons = append(reasons, "ideal weather")
	}
	if base.Crowd >= subScoreHighBar {
		reasons = append(reasons, "off-peak, uncrowded")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

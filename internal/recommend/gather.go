package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bangtaeuk/whereorwhen/internal/analyzer"
	"github.com/bangtaeuk/whereorwhen/internal/scoring"
)

// The engine reads five upstream datasets through these interfaces.
// Implementations live in internal/database and internal/cache.

type CatalogSource interface {
	ListCities(ctx context.Context) ([]City, error)
}

type ScoreSource interface {
	MonthlyScores(ctx context.Context) (map[string]map[int]scoring.Breakdown, error)
}

type ExchangeSource interface {
	ExchangeHistory(ctx context.Context, since time.Time) (map[string]analyzer.ExchangeSeries, error)
}

type SeasonSource interface {
	SeasonsByCity(ctx context.Context) (map[string][]analyzer.Season, error)
}

type ForecastSource interface {
	AllForecasts(ctx context.Context) (map[string]*analyzer.ForecastSnapshot, error)
}

// SourceStatus describes how one dataset fetch went.
type SourceStatus string

const (
	SourceOK       SourceStatus = "ok"
	SourceEmpty    SourceStatus = "empty"
	SourceDegraded SourceStatus = "degraded"
)

// SourceResult reports the outcome of fetching one dataset. A degraded
// source contributed an empty dataset instead of failing the run.
type SourceResult struct {
	Name   string
	Status SourceStatus
	Err    error
}

func (r SourceResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", r.Name, r.Status, r.Err)
	}
	return fmt.Sprintf("%s: %s", r.Name, r.Status)
}

// Gatherer fetches the upstream datasets for one ranking run. The
// fetches have no ordering dependency, so they run concurrently.
type Gatherer struct {
	catalog   CatalogSource
	scores    ScoreSource
	exchange  ExchangeSource
	seasons   SeasonSource
	forecasts ForecastSource
}

func NewGatherer(catalog CatalogSource, scores ScoreSource, exchange ExchangeSource, seasons SeasonSource, forecasts ForecastSource) *Gatherer {
	return &Gatherer{
		catalog:   catalog,
		scores:    scores,
		exchange:  exchange,
		seasons:   seasons,
		forecasts: forecasts,
	}
}

// exchangeLookback bounds how much rate history one run pulls. It
// covers the analyzer's 90-day window with slack for sparse feeds.
const exchangeLookback = 100 * 24 * time.Hour

// Gather fetches all datasets concurrently and assembles the Inputs
// for a run anchored at today. A failed source degrades to an empty
// dataset so a partial-data day still yields a best-effort ranking;
// per-source outcomes are reported alongside.
func (g *Gatherer) Gather(ctx context.Context, today time.Time) (Inputs, []SourceResult) {
	var (
		in      Inputs
		results [5]SourceResult
		wg      sync.WaitGroup
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		cities, err := g.catalog.ListCities(ctx)
		in.Cities = cities
		results[0] = sourceResult("catalog", len(cities), err)
	}()
	go func() {
		defer wg.Done()
		scores, err := g.scores.MonthlyScores(ctx)
		in.BaseScores = scores
		results[1] = sourceResult("base_scores", len(scores), err)
	}()
	go func() {
		defer wg.Done()
		since := today.Add(-exchangeLookback)
		history, err := g.exchange.ExchangeHistory(ctx, since)
		in.Exchange = history
		results[2] = sourceResult("exchange_history", len(history), err)
	}()
	go func() {
		defer wg.Done()
		seasons, err := g.seasons.SeasonsByCity(ctx)
		in.Seasons = seasons
		results[3] = sourceResult("seasons", len(seasons), err)
	}()
	go func() {
		defer wg.Done()
		forecasts, err := g.forecasts.AllForecasts(ctx)
		in.Forecasts = forecasts
		results[4] = sourceResult("forecast_cache", len(forecasts), err)
	}()
	wg.Wait()

	return in, results[:]
}

func sourceResult(name string, size int, err error) SourceResult {
	switch {
	case err != nil:
		return SourceResult{Name: name, Status: SourceDegraded, Err: err}
	case size == 0:
		return SourceResult{Name: name, Status: SourceEmpty}
	default:
		return SourceResult{Name: name, Status: SourceOK}
	}
}

package analyzer

import (
	"fmt"
	"time"
)

// RateObservation is one daily exchange-rate quote: local-currency
// units per 1 unit of the foreign currency.
type RateObservation struct {
	Date time.Time `json:"date"`
	Rate float64   `json:"rate"`
}

// ExchangeSeries is a time-ordered (oldest first) rate history for one
// currency. The analyzer only reads it.
type ExchangeSeries []RateObservation

const (
	exchangeWindowDays   = 90
	exchangeShortDays    = 30
	exchangeMinSamples   = 7
	exchangeLowTolerance = 1.005
)

// ExchangeBonus rewards timing when the currency is cheap to buy. A
// current rate within half a percent of the 90-day minimum earns the
// full bonus; within half a percent of the 30-day minimum earns half.
// Fewer than 7 observations in the trailing 90 days means no signal,
// not an error.
func ExchangeBonus(today time.Time, series ExchangeSeries) Bonus {
	since := today.AddDate(0, 0, -exchangeWindowDays)
	shortSince := today.AddDate(0, 0, -exchangeShortDays)

	var window ExchangeSeries
	for _, obs := range series {
		if !obs.Date.Before(since) && !obs.Date.After(today) {
			window = append(window, obs)
		}
	}

	if len(window) < exchangeMinSamples {
		return Bonus{}
	}

	current := window[len(window)-1].Rate
	min90 := window[0].Rate
	min30 := 0.0
	for _, obs := range window {
		if obs.Rate < min90 {
			min90 = obs.Rate
		}
		if !obs.Date.Before(shortSince) {
			if min30 == 0 || obs.Rate < min30 {
				min30 = obs.Rate
			}
		}
	}

	// The 3-month check runs first so a rate at both lows earns only
	// the larger bonus.
	if current <= min90*exchangeLowTolerance {
		return Bonus{Amount: 1.0, Reason: "currency at 3-month low"}
	}
	if min30 > 0 && current <= min30*exchangeLowTolerance {
		return Bonus{Amount: 0.5, Reason: "currency at 1-month low"}
	}

	return Bonus{}
}

// Validate reports the first malformed observation in the series, for
// use by ingest paths before persisting.
func (s ExchangeSeries) Validate() error {
	for i, obs := range s {
		if obs.Rate <= 0 {
			return fmt.Errorf("observation %d: rate must be positive, got %f", i, obs.Rate)
		}
		if i > 0 && obs.Date.Before(s[i-1].Date) {
			return fmt.Errorf("observation %d: out of order", i)
		}
	}
	return nil
}

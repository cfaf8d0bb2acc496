package database

import (
	"time"
)

// CityRow represents one catalog entry as stored
type CityRow struct {
	ID           string
	Name         string
	NameLocal    string
	CountryCode  string
	CurrencyCode string
	Lat          float64
	Lon          float64
	SortOrder    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MonthlyScoreRow represents the pre-computed base score for one
// (city, month) pair. The total column is derived; writes go through
// UpsertMonthlyScore which recomputes it from the sub-scores.
type MonthlyScoreRow struct {
	CityID  string
	Month   int
	Weather float64
	Cost    float64
	Crowd   float64
	Buzz    float64
	Total   float64
}

// ExchangeRateRow represents one daily rate observation
type ExchangeRateRow struct {
	Currency string
	Date     time.Time
	Rate     float64
}

// SeasonRow represents one named recurring period for a city
type SeasonRow struct {
	ID         int64
	CityID     string
	Name       string
	StartMonth int
	StartDay   int
	EndMonth   int
	EndDay     int
}

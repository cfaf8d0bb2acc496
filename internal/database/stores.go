package database

import (
	"context"
	"time"

	"github.com/bangtaeuk/whereorwhen/internal/analyzer"
	"github.com/bangtaeuk/whereorwhen/internal/recommend"
	"github.com/bangtaeuk/whereorwhen/internal/scoring"
)

// ListCities returns the city catalog in its stable display order.
func (db *DB) ListCities(ctx context.Context) ([]recommend.City, error) {
	query := `
		SELECT id, name, name_local, country_code, currency_code, lat, lon
		FROM cities
		ORDER BY sort_order, id
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []recommend.City
	for rows.Next() {
		var c recommend.City
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.NameLocal,
			&c.CountryCode,
			&c.CurrencyCode,
			&c.Lat,
			&c.Lon,
		); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}

	return cities, rows.Err()
}

// UpsertCity inserts or updates a catalog entry
func (db *DB) UpsertCity(ctx context.Context, city *CityRow) error {
	query := `
		INSERT INTO cities (id, name, name_local, country_code, currency_code, lat, lon, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    name_local = EXCLUDED.name_local,
		    country_code = EXCLUDED.country_code,
		    currency_code = EXCLUDED.currency_code,
		    lat = EXCLUDED.lat,
		    lon = EXCLUDED.lon,
		    sort_order = EXCLUDED.sort_order,
		    updated_at = CURRENT_TIMESTAMP
	`
	_, err := db.ExecContext(ctx, query,
		city.ID, city.Name, city.NameLocal, city.CountryCode,
		city.CurrencyCode, city.Lat, city.Lon, city.SortOrder)
	return err
}

// MonthlyScores returns every stored base score keyed by city id and
// calendar month.
func (db *DB) MonthlyScores(ctx context.Context) (map[string]map[int]scoring.Breakdown, error) {
	query := `
		SELECT city_id, month, weather, cost, crowd, buzz, total
		FROM monthly_scores
		ORDER BY city_id, month
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make(map[string]map[int]scoring.Breakdown)
	for rows.Next() {
		var (
			cityID string
			month  int
			b      scoring.Breakdown
		)
		if err := rows.Scan(&cityID, &month, &b.Weather, &b.Cost, &b.Crowd, &b.Buzz, &b.Total); err != nil {
			return nil, err
		}
		if scores[cityID] == nil {
			scores[cityID] = make(map[int]scoring.Breakdown)
		}
		scores[cityID][month] = b
	}

	return scores, rows.Err()
}

// UpsertMonthlyScore writes one (city, month) base score. The stored
// total is always recomputed from the sub-scores with the default
// weights, never taken from the caller.
func (db *DB) UpsertMonthlyScore(ctx context.Context, s *MonthlyScoreRow) error {
	s.Total = scoring.DefaultWeights.Total(s.Weather, s.Cost, s.Crowd, s.Buzz)

	query := `
		INSERT INTO monthly_scores (city_id, month, weather, cost, crowd, buzz, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (city_id, month) DO UPDATE
		SET weather = EXCLUDED.weather,
		    cost = EXCLUDED.cost,
		    crowd = EXCLUDED.crowd,
		    buzz = EXCLUDED.buzz,
		    total = EXCLUDED.total,
		    updated_at = CURRENT_TIMESTAMP
	`
	_, err := db.ExecContext(ctx, query,
		s.CityID, s.Month, s.Weather, s.Cost, s.Crowd, s.Buzz, s.Total)
	return err
}

// ExchangeHistory returns rate observations on or after since, grouped
// by currency, oldest first.
func (db *DB) ExchangeHistory(ctx context.Context, since time.Time) (map[string]analyzer.ExchangeSeries, error) {
	query := `
		SELECT currency, date, rate
		FROM exchange_rates
		WHERE date >= $1
		ORDER BY currency, date
	`

	rows, err := db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make(map[string]analyzer.ExchangeSeries)
	for rows.Next() {
		var (
			currency string
			obs      analyzer.RateObservation
		)
		if err := rows.Scan(&currency, &obs.Date, &obs.Rate); err != nil {
			return nil, err
		}
		history[currency] = append(history[currency], obs)
	}

	return history, rows.Err()
}

// UpsertExchangeRate records one daily observation, replacing any
// earlier quote for the same currency and date.
func (db *DB) UpsertExchangeRate(ctx context.Context, rate *ExchangeRateRow) error {
	query := `
		INSERT INTO exchange_rates (currency, date, rate)
		VALUES ($1, $2, $3)
		ON CONFLICT (currency, date) DO UPDATE
		SET rate = EXCLUDED.rate
	`
	_, err := db.ExecContext(ctx, query, rate.Currency, rate.Date, rate.Rate)
	return err
}

// SeasonsByCity returns all season calendars keyed by city id.
func (db *DB) SeasonsByCity(ctx context.Context) (map[string][]analyzer.Season, error) {
	query := `
		SELECT city_id, name, start_month, start_day, end_month, end_day
		FROM seasons
		ORDER BY city_id, id
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seasons := make(map[string][]analyzer.Season)
	for rows.Next() {
		var (
			cityID string
			s      analyzer.Season
		)
		if err := rows.Scan(&cityID, &s.Name, &s.StartMonth, &s.StartDay, &s.EndMonth, &s.EndDay); err != nil {
			return nil, err
		}
		seasons[cityID] = append(seasons[cityID], s)
	}

	return seasons, rows.Err()
}

// InsertSeason adds one season calendar entry for a city
func (db *DB) InsertSeason(ctx context.Context, s *SeasonRow) error {
	query := `
		INSERT INTO seasons (city_id, name, start_month, start_day, end_month, end_day)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return db.QueryRowContext(ctx, query,
		s.CityID, s.Name, s.StartMonth, s.StartDay, s.EndMonth, s.EndDay).Scan(&s.ID)
}

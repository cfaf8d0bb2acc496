package recommend

import (
	"testing"
	"time"

	"github.com/bangtaeuk/whereorwhen/internal/analyzer"
	"github.com/bangtaeuk/whereorwhen/internal/scoring"
)

// Wednesday: the 12-week window runs Mon 2025-06-16 .. Mon 2025-09-01,
// so July holds weeksFromNow 4..7.
var testToday = time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)

func testCity(id, currency string) City {
	return City{ID: id, Name: id, CountryCode: "XX", CurrencyCode: currency}
}

// flatBreakdown returns a breakdown whose total equals the given value
func flatBreakdown(total float64) scoring.Breakdown {
	return scoring.Compose(total, total, total, total)
}

func lowRateSeries(today time.Time, rate float64) analyzer.ExchangeSeries {
	var series analyzer.ExchangeSeries
	for d := 89; d >= 0; d-- {
		series = append(series, analyzer.RateObservation{
			Date: today.AddDate(0, 0, -d),
			Rate: rate,
		})
	}
	return series
}

func TestRanker_EndToEndExample(t *testing.T) {
	// Base total 7.0 in the target month, exchange bonus 1.0, booking
	// bonus 0.3: final score 8.3, grade best.
	in := Inputs{
		Cities: []City{testCity("tokyo", "JPY")},
		BaseScores: map[string]map[int]scoring.Breakdown{
			"tokyo": {7: flatBreakdown(7.0)},
		},
		Exchange: map[string]analyzer.ExchangeSeries{
			"JPY": lowRateSeries(testToday, 1300),
		},
	}

	recs := NewRanker(10).Rank(testToday, in)
	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}

	rec := recs[0]
	if rec.Score != 8.3 {
		t.Errorf("Expected score 8.3, got %v", rec.Score)
	}
	if rec.BaseScore != 7.0 {
		t.Errorf("Expected base score 7.0, got %v", rec.BaseScore)
	}
	if rec.Grade != scoring.GradeBest {
		t.Errorf("Expected grade best, got %v", rec.Grade)
	}
	if rec.Rank != 1 {
		t.Errorf("Expected rank 1, got %d", rec.Rank)
	}
	if rec.Bonuses.Exchange != 1.0 || rec.Bonuses.Timeliness != 0.3 {
		t.Errorf("Unexpected bonus breakdown: %+v", rec.Bonuses)
	}
	if rec.Bonuses.Season != 0 || rec.Bonuses.Forecast != 0 {
		t.Errorf("Unexpected bonus breakdown: %+v", rec.Bonuses)
	}

	// July candidates at weeksFromNow 4..7 tie at 8.3; the earliest
	// evaluated week wins the per-city dedup.
	if !rec.Start.Equal(time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected earliest tying week 2025-07-07, got %s", rec.Start)
	}
	if rec.Label != "July week 1" {
		t.Errorf("Unexpected label: %q", rec.Label)
	}

	wantReasons := []string{"currency at 3-month low", "optimal booking window (4-8 weeks out)"}
	if len(rec.Reasons) != len(wantReasons) {
		t.Fatalf("Expected %d reasons, got %v", len(wantReasons), rec.Reasons)
	}
	for i, want := range wantReasons {
		if rec.Reasons[i] != want {
			t.Errorf("Reason %d: got %q, want %q", i, rec.Reasons[i], want)
		}
	}
}

func TestRanker_DedupKeepsBestWeekPerCity(t *testing.T) {
	in := Inputs{
		Cities: []City{testCity("tokyo", "JPY")},
		BaseScores: map[string]map[int]scoring.Breakdown{
			"tokyo": {
				6: flatBreakdown(5.0),
				7: flatBreakdown(7.0),
				8: flatBreakdown(6.0),
			},
		},
	}

	recs := NewRanker(10).Rank(testToday, in)
	if len(recs) != 1 {
		t.Fatalf("Expected exactly 1 recommendation per city, got %d", len(recs))
	}

	// July base 7.0 + timeliness 0.3 beats every other week
	if recs[0].Score != 7.3 {
		t.Errorf("Expected max score 7.3, got %v", recs[0].Score)
	}
	if recs[0].Start.Month() != time.July {
		t.Errorf("Expected a July week, got %s", recs[0].Start)
	}
}

func TestRanker_OrderingAndRanks(t *testing.T) {
	in := Inputs{
		Cities: []City{
			testCity("alpha", "AAA"),
			testCity("bravo", "BBB"),
			testCity("charlie", "CCC"),
		},
		BaseScores: map[string]map[int]scoring.Breakdown{
			"alpha":   {7: flatBreakdown(6.0)},
			"bravo":   {7: flatBreakdown(8.0)},
			"charlie": {7: flatBreakdown(7.0)},
		},
	}

	recs := NewRanker(10).Rank(testToday, in)
	if len(recs) != 3 {
		t.Fatalf("Expected 3 recommendations, got %d", len(recs))
	}

	for i, rec := range recs {
		if rec.Rank != i+1 {
			t.Errorf("Position %d: expected rank %d, got %d", i, i+1, rec.Rank)
		}
		if i > 0 && recs[i-1].Score < rec.Score {
			t.Errorf("Scores not sorted descending: %v before %v", recs[i-1].Score, rec.Score)
		}
	}

	if recs[0].City.ID != "bravo" || recs[1].City.ID != "charlie" || recs[2].City.ID != "alpha" {
		t.Errorf("Unexpected order: %s, %s, %s", recs[0].City.ID, recs[1].City.ID, recs[2].City.ID)
	}
}

func TestRanker_TopNLimit(t *testing.T) {
	in := Inputs{
		Cities: []City{
			testCity("alpha", "AAA"),
			testCity("bravo", "BBB"),
			testCity("charlie", "CCC"),
		},
		BaseScores: map[string]map[int]scoring.Breakdown{
			"alpha":   {7: flatBreakdown(6.0)},
			"bravo":   {7: flatBreakdown(8.0)},
			"charlie": {7: flatBreakdown(7.0)},
		},
	}

	recs := NewRanker(2).Rank(testToday, in)
	if len(recs) != 2 {
		t.Fatalf("Expected top 2, got %d", len(recs))
	}
	if recs[0].City.ID != "bravo" || recs[1].City.ID != "charlie" {
		t.Errorf("Unexpected top 2: %s, %s", recs[0].City.ID, recs[1].City.ID)
	}
}

func TestRanker_MissingBaseScoresOmitCandidates(t *testing.T) {
	in := Inputs{
		Cities: []City{
			testCity("nodata", "AAA"),
			testCity("tokyo", "JPY"),
		},
		BaseScores: map[string]map[int]scoring.Breakdown{
			// nodata has no scores at all; tokyo only covers a month
			// outside the window
			"tokyo": {1: flatBreakdown(9.0)},
		},
	}

	recs := NewRanker(10).Rank(testToday, in)
	if len(recs) != 0 {
		t.Errorf("Expected no recommendations without usable data, got %d", len(recs))
	}
}

func TestRanker_EmptyInputs(t *testing.T) {
	recs := NewRanker(10).Rank(testToday, Inputs{})
	if len(recs) != 0 {
		t.Errorf("Expected empty result for empty inputs, got %d", len(recs))
	}
}

func TestRanker_ReasonPriorityAndTruncation(t *testing.T) {
	fetched := testToday.Add(-1 * time.Hour)

	in := Inputs{
		Cities: []City{testCity("danang", "VND")},
		BaseScores: map[string]map[int]scoring.Breakdown{
			// weather and crowd both >= 8 would add two more reasons,
			// but the four analyzer reasons come first
			"danang": {7: scoring.Compose(9.0, 7.0, 9.0, 7.0)},
		},
		Exchange: map[string]analyzer.ExchangeSeries{
			"VND": lowRateSeries(testToday, 55.0),
		},
		Seasons: map[string][]analyzer.Season{
			"danang": {{Name: "dry season", StartMonth: 7, StartDay: 1, EndMonth: 7, EndDay: 31}},
		},
		Forecasts: map[string]*analyzer.ForecastSnapshot{
			"danang": {
				CityID:               "danang",
				ClearRatio:           0.72,
				HistoricalClearRatio: 0.50,
				FetchedAt:            fetched,
			},
		},
	}

	recs := NewRanker(10).Rank(testToday, in)
	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}

	rec := recs[0]
	if len(rec.Reasons) != 3 {
		t.Fatalf("Expected reasons truncated to 3, got %v", rec.Reasons)
	}

	want := []string{"currency at 3-month low", "forecast shows 72% clear days", "dry season"}
	for i, w := range want {
		if rec.Reasons[i] != w {
			t.Errorf("Reason %d: got %q, want %q", i, rec.Reasons[i], w)
		}
	}
}

func TestRanker_BaseBreakdownReasons(t *testing.T) {
	in := Inputs{
		Cities: []City{testCity("sydney", "AUD")},
		BaseScores: map[string]map[int]scoring.Breakdown{
			"sydney": {9: scoring.Compose(8.5, 6.0, 8.5, 6.0)},
		},
	}

	recs := NewRanker(10).Rank(testToday, in)
	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}

	// September (week 12) carries no analyzer bonuses, so only the
	// base-breakdown extras remain
	want := []string{"ideal weather", "off-peak, uncrowded"}
	rec := recs[0]
	if len(rec.Reasons) != len(want) {
		t.Fatalf("Expected %d reasons, got %v", len(want), rec.Reasons)
	}
	for i, w := range want {
		if rec.Reasons[i] != w {
			t.Errorf("Reason %d: got %q, want %q", i, rec.Reasons[i], w)
		}
	}
}

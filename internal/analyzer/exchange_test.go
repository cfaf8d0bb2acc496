package analyzer

import (
	"testing"
	"time"
)

func seriesFromRates(today time.Time, daysAgoRates map[int]float64) ExchangeSeries {
	// Build an ordered series from a days-ago → rate map
	maxDays := 0
	for d := range daysAgoRates {
		if d > maxDays {
			maxDays = d
		}
	}

	var series ExchangeSeries
	for d := maxDays; d >= 0; d-- {
		if rate, ok := daysAgoRates[d]; ok {
			series = append(series, RateObservation{
				Date: today.AddDate(0, 0, -d),
				Rate: rate,
			})
		}
	}
	return series
}

func flatSeries(today time.Time, days int, rate float64) ExchangeSeries {
	var series ExchangeSeries
	for d := days - 1; d >= 0; d-- {
		series = append(series, RateObservation{
			Date: today.AddDate(0, 0, -d),
			Rate: rate,
		})
	}
	return series
}

func TestExchangeBonus_ThreeMonthLow(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// 90-day min 1300, 30-day min 1320, current 1302:
	// 1302 <= 1300*1.005 = 1306.5 earns the full bonus
	rates := map[int]float64{
		85: 1340, 70: 1300, 55: 1360, 40: 1350,
		25: 1330, 20: 1320, 10: 1335, 0: 1302,
	}

	bonus := ExchangeBonus(today, seriesFromRates(today, rates))
	if bonus.Amount != 1.0 {
		t.Errorf("Expected bonus 1.0, got %v", bonus.Amount)
	}
	if bonus.Reason != "currency at 3-month low" {
		t.Errorf("Unexpected reason: %q", bonus.Reason)
	}
}

func TestExchangeBonus_OneMonthLow(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// 90-day min 1250, 30-day min 1300, current 1301:
	// above 1256.25 but within 1306.5 earns the half bonus
	rates := map[int]float64{
		85: 1340, 70: 1250, 55: 1360, 40: 1350,
		25: 1330, 20: 1300, 10: 1335, 0: 1301,
	}

	bonus := ExchangeBonus(today, seriesFromRates(today, rates))
	if bonus.Amount != 0.5 {
		t.Errorf("Expected bonus 0.5, got %v", bonus.Amount)
	}
	if bonus.Reason != "currency at 1-month low" {
		t.Errorf("Unexpected reason: %q", bonus.Reason)
	}
}

func TestExchangeBonus_NoSignal(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// Current well above both lows
	rates := map[int]float64{
		85: 1250, 70: 1260, 55: 1270, 40: 1280,
		25: 1290, 20: 1295, 10: 1300, 0: 1400,
	}

	bonus := ExchangeBonus(today, seriesFromRates(today, rates))
	if bonus.Amount != 0 || bonus.Reason != "" {
		t.Errorf("Expected zero bonus with no reason, got %+v", bonus)
	}
}

func TestExchangeBonus_InsufficientHistory(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// Six observations inside the window: below the minimum of seven
	series := flatSeries(today, 6, 1300)

	bonus := ExchangeBonus(today, series)
	if bonus.Amount != 0 || bonus.Reason != "" {
		t.Errorf("Expected zero bonus for insufficient history, got %+v", bonus)
	}
}

func TestExchangeBonus_IgnoresObservationsOutsideWindow(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// Old observations beyond 90 days must not count toward the sample
	// minimum or the 90-day low
	series := flatSeries(today.AddDate(0, 0, -120), 10, 1000)
	series = append(series, flatSeries(today, 6, 1300)...)

	bonus := ExchangeBonus(today, series)
	if bonus.Amount != 0 {
		t.Errorf("Expected zero bonus (stale history excluded), got %+v", bonus)
	}
}

func TestExchangeBonus_CapNeverExceeded(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	series := flatSeries(today, 90, 1300)
	bonus := ExchangeBonus(today, series)
	if bonus.Amount > MaxExchangeBonus {
		t.Errorf("Bonus %v exceeds cap %v", bonus.Amount, MaxExchangeBonus)
	}
}

func TestExchangeSeries_Validate(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	good := flatSeries(today, 5, 1300)
	if err := good.Validate(); err != nil {
		t.Errorf("Expected valid series, got %v", err)
	}

	bad := ExchangeSeries{{Date: today, Rate: -1}}
	if err := bad.Validate(); err == nil {
		t.Error("Expected error for negative rate")
	}

	outOfOrder := ExchangeSeries{
		{Date: today, Rate: 1300},
		{Date: today.AddDate(0, 0, -1), Rate: 1300},
	}
	if err := outOfOrder.Validate(); err == nil {
		t.Error("Expected error for out-of-order series")
	}
}

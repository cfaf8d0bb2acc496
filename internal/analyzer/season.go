package analyzer

import (
	"fmt"
	"math"
	"time"
)

// Season is a named recurring period for a city, expressed as month+day
// boundaries. Ranges may wrap the year end (e.g. Dec 20 - Feb 10).
type Season struct {
	Name       string `json:"name"`
	StartMonth int    `json:"start_month"`
	StartDay   int    `json:"start_day"`
	EndMonth   int    `json:"end_month"`
	EndDay     int    `json:"end_day"`
}

const seasonLeadDays = 14

// Contains reports whether the date's (month, day) falls inside the
// recurring range, boundaries inclusive.
func (s Season) Contains(date time.Time) bool {
	key := monthDayKey(int(date.Month()), date.Day())
	start := monthDayKey(s.StartMonth, s.StartDay)
	end := monthDayKey(s.EndMonth, s.EndDay)

	if start <= end {
		return key >= start && key <= end
	}
	// Wraps the year end.
	return key >= start || key <= end
}

// DaysUntilStart returns the number of days from today until the next
// occurrence of the season's start date. Zero means it starts today.
func (s Season) DaysUntilStart(today time.Time) int {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	next := time.Date(today.Year(), time.Month(s.StartMonth), s.StartDay, 0, 0, 0, 0, today.Location())
	if next.Before(day) {
		next = next.AddDate(1, 0, 0)
	}
	// Round so DST-shortened days still count as whole days.
	return int(math.Round(next.Sub(day).Hours() / 24))
}

// SeasonBonus credits a candidate week that either anticipates a season
// starting within 14 days of today, or falls inside a season's range.
// The imminent-start check runs for every season regardless of overlap,
// since a week can anticipate a season it does not yet touch. The first
// season where either condition holds wins; bonuses never stack.
func SeasonBonus(today, weekStart time.Time, seasons []Season) Bonus {
	for _, s := range seasons {
		until := s.DaysUntilStart(today)
		if until > 0 && until <= seasonLeadDays {
			return Bonus{Amount: 0.5, Reason: fmt.Sprintf("%s starting soon", s.Name)}
		}
		if s.Contains(weekStart) {
			return Bonus{Amount: 0.3, Reason: s.Name}
		}
	}
	return Bonus{}
}

func monthDayKey(month, day int) int {
	return month*100 + day
}

package recommend

import (
	"fmt"
	"time"
)

// WeekRange is one 7-day candidate period in the evaluation window.
// Ranges are generated fresh per run relative to "today" and never
// persisted on their own.
type WeekRange struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Label        string    `json:"label"`
	Month        int       `json:"month"`
	WeeksFromNow int       `json:"weeks_from_now"`
}

// evaluationWeeks is the size of the rolling future window.
const evaluationWeeks = 12

// UpcomingWeeks builds the 12 consecutive candidate weeks starting from
// the next Monday. If today is a Monday the walk starts today, so
// weeksFromNow is always 1..12.
func UpcomingWeeks(today time.Time) []WeekRange {
	anchor := nextMonday(today)

	weeks := make([]WeekRange, 0, evaluationWeeks)
	for i := 0; i < evaluationWeeks; i++ {
		start := anchor.AddDate(0, 0, 7*i)
		end := start.AddDate(0, 0, 6)
		weeks = append(weeks, WeekRange{
			Start:        start,
			End:          end,
			Label:        weekLabel(start),
			Month:        int(start.Month()),
			WeeksFromNow: i + 1,
		})
	}
	return weeks
}

func nextMonday(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(time.Monday) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, offset)
}

// weekLabel renders "April week 2" style labels from the ordinal
// week-of-month of the start date.
func weekLabel(start time.Time) string {
	ordinal := (start.Day()-1)/7 + 1
	return fmt.Sprintf("%s week %d", start.Month().String(), ordinal)
}

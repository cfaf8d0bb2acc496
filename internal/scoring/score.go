package scoring

import (
	"math"
)

// Weights holds the relative weight of each sub-score. The four weights
// are expected to sum to 1.0.
type Weights struct {
	Weather float64
	Cost    float64
	Crowd   float64
	Buzz    float64
}

// DefaultWeights is the reference weight profile used for all rankings.
var DefaultWeights = Weights{
	Weather: 0.35,
	Cost:    0.25,
	Crowd:   0.15,
	Buzz:    0.25,
}

// Breakdown holds the four monthly sub-scores for a city plus the
// weighted total. Each sub-score is in [1.0, 10.0].
type Breakdown struct {
	Weather float64 `json:"weather"`
	Cost    float64 `json:"cost"`
	Crowd   float64 `json:"crowd"`
	Buzz    float64 `json:"buzz"`
	Total   float64 `json:"total"`
}

// Grade is the qualitative bucket derived from a total score.
type Grade string

const (
	GradeBest    Grade = "best"
	GradeGood    Grade = "good"
	GradeAverage Grade = "average"
	GradePoor    Grade = "poor"
)

// Total computes the weighted sum of the four sub-scores, rounded to one
// decimal place. Sub-scores outside [1.0, 10.0] are clamped first so the
// result stays inside the score range.
func (w Weights) Total(weather, cost, crowd, buzz float64) float64 {
	sum := w.Weather*clamp(weather) +
		w.Cost*clamp(cost) +
		w.Crowd*clamp(crowd) +
		w.Buzz*clamp(buzz)
	return Round1(sum)
}

// Compose builds a Breakdown from the four sub-scores using the default
// weight profile.
func Compose(weather, cost, crowd, buzz float64) Breakdown {
	return Breakdown{
		Weather: weather,
		Cost:    cost,
		Crowd:   crowd,
		Buzz:    buzz,
		Total:   DefaultWeights.Total(weather, cost, crowd, buzz),
	}
}

// GradeFor classifies a total score. Boundaries belong to the higher
// grade: 8.0 is best, 6.0 is good, 4.0 is average.
func GradeFor(total float64) Grade {
	switch {
	case total >= 8.0:
		return GradeBest
	case total >= 6.0:
		return GradeGood
	case total >= 4.0:
		return GradeAverage
	default:
		return GradePoor
	}
}

// Round1 rounds to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func clamp(x float64) float64 {
	if x < 1.0 {
		return 1.0
	}
	if x > 10.0 {
		return 10.0
	}
	return x
}

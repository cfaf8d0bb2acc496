package analyzer

// Bonus is an additive, capped score adjustment produced by one
// analyzer for one (city, week) candidate. A zero bonus carries no
// reason.
type Bonus struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason,omitempty"`
}

// Per-analyzer caps on the bonus amount.
const (
	MaxExchangeBonus   = 1.0
	MaxForecastBonus   = 0.5
	MaxSeasonBonus     = 0.5
	MaxTimelinessBonus = 0.3
)

package protocol

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bangtaeuk/whereorwhen/internal/recommend"
)

// ForecastUpdateMessage is published by the external forecast collector
// whenever it refreshes a city's short-range outlook.
type ForecastUpdateMessage struct {
	CityID               string    `json:"city_id"`
	ClearRatio           float64   `json:"clear_ratio"`
	HistoricalClearRatio float64   `json:"historical_clear_ratio"`
	FetchedAt            time.Time `json:"fetched_at"`
}

// RateMessage is one daily exchange-rate observation from the external
// FX collector. Date is a calendar date in YYYY-MM-DD form.
type RateMessage struct {
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
	Rate     float64 `json:"rate"`
}

// RecommendationSetMessage carries one finished ranking run to
// downstream consumers.
type RecommendationSetMessage struct {
	RunID       string                     `json:"run_id"`
	Date        string                     `json:"date"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Items       []recommend.Recommendation `json:"items"`
}

const rateDateLayout = "2006-01-02"

// ParseDate parses the observation date
func (m *RateMessage) ParseDate() (time.Time, error) {
	return time.Parse(rateDateLayout, m.Date)
}

// EncodeForecastUpdate encodes a ForecastUpdateMessage to JSON
func EncodeForecastUpdate(msg *ForecastUpdateMessage) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeForecastUpdate decodes and validates a ForecastUpdateMessage
func DecodeForecastUpdate(data []byte) (*ForecastUpdateMessage, error) {
	var msg ForecastUpdateMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("invalid forecast update: %w", err)
	}
	if msg.CityID == "" {
		return nil, fmt.Errorf("city_id is required")
	}
	if msg.ClearRatio < 0 || msg.ClearRatio > 1 {
		return nil, fmt.Errorf("clear_ratio must be in [0,1], got %f", msg.ClearRatio)
	}
	if msg.HistoricalClearRatio < 0 || msg.HistoricalClearRatio > 1 {
		return nil, fmt.Errorf("historical_clear_ratio must be in [0,1], got %f", msg.HistoricalClearRatio)
	}
	if msg.FetchedAt.IsZero() {
		return nil, fmt.Errorf("fetched_at is required")
	}
	return &msg, nil
}

// EncodeRate encodes a RateMessage to JSON
func EncodeRate(msg *RateMessage) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeRate decodes and validates a RateMessage
func DecodeRate(data []byte) (*RateMessage, error) {
	var msg RateMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("invalid rate message: %w", err)
	}
	if msg.Currency == "" {
		return nil, fmt.Errorf("currency is required")
	}
	if msg.Rate <= 0 {
		return nil, fmt.Errorf("rate must be positive, got %f", msg.Rate)
	}
	if _, err := msg.ParseDate(); err != nil {
		return nil, fmt.Errorf("invalid date (must be YYYY-MM-DD): %w", err)
	}
	return &msg, nil
}

// EncodeRecommendationSet encodes a RecommendationSetMessage to JSON
func EncodeRecommendationSet(msg *RecommendationSetMessage) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeRecommendationSet decodes JSON to RecommendationSetMessage
func DecodeRecommendationSet(data []byte) (*RecommendationSetMessage, error) {
	var msg RecommendationSetMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("invalid recommendation set: %w", err)
	}
	return &msg, nil
}

package analyzer

import (
	"testing"
)

func TestTimelinessBonus(t *testing.T) {
	tests := []struct {
		weeksFromNow int
		expected     float64
	}{
		{1, 0},
		{3, 0},
		{4, 0.3}, // window start
		{5, 0.3},
		{8, 0.3}, // window end
		{9, 0},
		{12, 0},
	}

	for _, tt := range tests {
		bonus := TimelinessBonus(tt.weeksFromNow)
		if bonus.Amount != tt.expected {
			t.Errorf("TimelinessBonus(%d) = %v, want %v", tt.weeksFromNow, bonus.Amount, tt.expected)
		}
		if tt.expected == 0 && bonus.Reason != "" {
			t.Errorf("TimelinessBonus(%d) should carry no reason, got %q", tt.weeksFromNow, bonus.Reason)
		}
		if tt.expected > 0 && bonus.Reason == "" {
			t.Errorf("TimelinessBonus(%d) should carry a reason", tt.weeksFromNow)
		}
		if bonus.Amount > MaxTimelinessBonus {
			t.Errorf("Bonus %v exceeds cap %v", bonus.Amount, MaxTimelinessBonus)
		}
	}
}

package analyzer

const (
	bookingWindowMin = 4
	bookingWindowMax = 8
)

// TimelinessBonus scores booking lead time as a flat step: weeks 4-8
// out are the sweet spot, everything else earns nothing. The claim is
// categorical (too soon / just right / too late), so no curve.
func TimelinessBonus(weeksFromNow int) Bonus {
	if weeksFromNow >= bookingWindowMin && weeksFromNow <= bookingWindowMax {
		return Bonus{Amount: 0.3, Reason: "optimal booking window (4-8 weeks out)"}
	}
	return Bonus{}
}

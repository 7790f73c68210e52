package pricing

import (
	"time"

	"staydrive/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

// Units returns the number of billable nights or days between start and end.
// Partial days are billed as a whole unit; an empty or inverted range yields 0.
func Units(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	// end.Sub saturates near 292 years, so count seconds from Unix().
	secs := end.Unix() - start.Unix()
	if end.Nanosecond() > start.Nanosecond() {
		secs++
	}
	return int((secs + secondsPerDay - 1) / secondsPerDay)
}

// Total is Units × rate. It returns 0 for an empty or inverted range so callers
// can render an incomplete selection without handling an error.
func Total(start, end time.Time, rate float64) float64 {
	return float64(Units(start, end)) * rate
}

// Quote prices a pair of calendar dates. Unparseable input prices at 0.
func Quote(startDate, endDate string, rate float64) float64 {
	start, err := time.Parse(domain.DateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(domain.DateLayout, endDate)
	if err != nil {
		return 0
	}
	return Total(start, end, rate)
}

package production

import (
	"math"
	"time"
)

// DateOnly drops the clock part of t, keeping the calendar date as seen in t's own
// location, and pins it to midnight UTC. All schedule arithmetic happens on these values.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func AddDays(t time.Time, days int) time.Time {
	return DateOnly(t).AddDate(0, 0, days)
}

// DaysBetween returns the number of calendar days from "from" to "to"; negative when to is earlier.
func DaysBetween(from, to time.Time) int {
	return int(math.Round(DateOnly(to).Sub(DateOnly(from)).Hours() / 24))
}

func datePtr(t time.Time) *time.Time {
	return &t
}

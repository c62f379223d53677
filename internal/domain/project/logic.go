package project

import (
	"math"
	"time"
)

// EndDate derives the inclusive end of a project: start + (days - 1) days,
// so a 1-day project ends the day it starts.
func EndDate(start time.Time, days int) time.Time {
	return start.AddDate(0, 0, days-1)
}

// DurationDays is the display-side day count between two dates,
// ceil((end-start)/24h). For midnight-aligned dates this is one less than the
// inclusive duration EndDate was derived from; both behaviors are part of the
// published contract.
func DurationDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// DaysRemaining counts whole days from now until end, never below zero: an
// overdue project reads as 0 days left.
func DaysRemaining(end, now time.Time) int {
	remaining := int(math.Ceil(end.Sub(now).Hours() / 24))
	if remaining < 0 {
		return 0
	}
	return remaining
}

package leave

import (
	"math"
	"time"
)

// RequestDays returns the inclusive day count of a leave range:
// ceil((end-start)/24h) + 1, so a single-day request counts as 1.
func RequestDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

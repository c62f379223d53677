package attendance

import (
	"math"
	"time"
)

// CalculateHours returns clockOut minus clockIn in hours, rounded to one
// decimal place. A clock-out before clock-in yields a negative value; the
// attendance source is trusted to order the punches.
func CalculateHours(clockIn, clockOut time.Time) float64 {
	hours := clockOut.Sub(clockIn).Hours()
	return math.Round(hours*10) / 10
}

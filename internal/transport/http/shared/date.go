package shared

import (
	"fmt"
	"time"
)

const dateOnly = "2006-01-02"

// ParseDate accepts either a bare date or a full RFC 3339 timestamp, the two
// shapes clients send for date fields.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateOnly, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC 3339", value)
}

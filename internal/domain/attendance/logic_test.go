package attendance

import (
	"testing"
	"time"
)

func clock(hour, minute int) time.Time {
	return time.Date(2024, 3, 5, hour, minute, 0, 0, time.UTC)
}

func TestCalculateHours(t *testing.T) {
	if got := CalculateHours(clock(9, 0), clock(17, 0)); got != 8.0 {
		t.Fatalf("expected 8.0 hours, got %v", got)
	}
	if got := CalculateHours(clock(9, 30), clock(18, 15)); got != 8.8 {
		t.Fatalf("expected 8.8 hours, got %v", got)
	}
}

func TestCalculateHoursNegativeWhenPunchesReversed(t *testing.T) {
	if got := CalculateHours(clock(17, 0), clock(9, 0)); got != -8.0 {
		t.Fatalf("expected -8.0 for reversed punches, got %v", got)
	}
}

func TestStatusTone(t *testing.T) {
	cases := map[string]string{
		StatusPresent: "success",
		StatusAbsent:  "danger",
		StatusLeave:   "warning",
		StatusWFH:     "primary",
		StatusHoliday: "gray",
		"unknown":     "gray",
	}
	for status, want := range cases {
		if got := StatusTone(status); got != want {
			t.Fatalf("status %s: expected tone %s, got %s", status, want, got)
		}
	}
}

package timezone

import "time"

// All display formatting takes an explicit IANA zone name. Nothing in this
// package falls back to the process-local zone; an unknown zone is an error.

const (
	dateLayout     = "Jan 02, 2006"
	timeLayout     = "15:04"
	dateTimeLayout = "Jan 02, 2006 15:04"
)

func FormatDate(t time.Time, zone string) (string, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", err
	}
	return t.In(loc).Format(dateLayout), nil
}

func FormatTime(t time.Time, zone string) (string, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", err
	}
	return t.In(loc).Format(timeLayout), nil
}

func FormatDateTime(t time.Time, zone string) (string, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", err
	}
	return t.In(loc).Format(dateTimeLayout), nil
}

// Valid reports whether zone names a loadable IANA location.
func Valid(zone string) bool {
	if zone == "" {
		return false
	}
	_, err := time.LoadLocation(zone)
	return err == nil
}

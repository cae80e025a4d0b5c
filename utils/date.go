package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
	isoLayout   = "2006-01-02T15:04:05.000Z07:00"
)

// DateOf renders t as a day bucket (yyyy-MM-dd) in local time.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatISO renders t as a UTC ISO-8601 instant with milliseconds, the
// format attendance blobs have always carried.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// CombineDateTime builds an ISO instant from a local calendar date and an
// HH:mm wall clock. An empty clock yields an empty string, meaning the
// field is absent.
func CombineDateTime(date, clock string) (string, error) {
	if clock == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(DateLayout+"T"+ClockLayout, date+"T"+clock, time.Local)
	if err != nil {
		return "", fmt.Errorf("combine %q %q: %w", date, clock, err)
	}
	return FormatISO(t), nil
}

// ParseISO accepts RFC3339 plus the looser layouts older blobs may carry.
func ParseISO(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return &t, nil
	}

	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if tt, e := time.ParseInLocation(layout, s, time.UTC); e == nil {
			return &tt, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}

// LocalClock renders an ISO instant as a local time-of-day string for the
// export views. Unparseable or empty input renders empty, not an error.
func LocalClock(iso string) string {
	t, err := ParseISO(iso)
	if err != nil {
		return ""
	}
	return t.Local().Format("15:04:05")
}

package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var location = time.UTC

// SetLocation sets the zone used for values sent without an offset.
func SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	location = loc
}

// ParseDate accepts RFC3339 timestamps, naive local timestamps and plain dates.
// Naive values are read in the location given to SetLocation (UTC by default).
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func parseOptionalDate(v string) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return time.Time{}, nil
	}
	return ParseDate(v)
}

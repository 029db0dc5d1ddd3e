// Package timezone provides IANA timezone utilities for timesense.
//
// Expression parsing is always relative to a caller-supplied timezone, so the
// package centralizes identifier validation and "now" resolution to keep time
// handling consistent across the HTTP API and the agent tool.
package timezone

import (
	"fmt"
	"time"
)

// Common timezone identifiers.
const (
	// TimezoneUTC is the UTC timezone identifier.
	TimezoneUTC = "UTC"

	// TimezoneAsiaShanghai is the China Standard Time identifier and the
	// default for Chinese time expressions.
	TimezoneAsiaShanghai = "Asia/Shanghai"
)

// ParseTimezone parses an IANA timezone identifier (e.g., "Asia/Shanghai").
// If the identifier is invalid, returns UTC and an error.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == TimezoneUTC {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	return loc, nil
}

// MustParseTimezone parses a timezone or panics if invalid.
// Use this for identifiers known to be valid at compile time.
func MustParseTimezone(tz string) *time.Location {
	loc, err := ParseTimezone(tz)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsValidTimezone checks if a timezone identifier is valid.
func IsValidTimezone(tz string) bool {
	_, err := ParseTimezone(tz)
	return err == nil
}

// NowInTimezone returns the current time in the given timezone.
func NowInTimezone(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}

// StartOfDay returns the start of the day (00:00:00) in the given timezone.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

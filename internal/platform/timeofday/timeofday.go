// Package timeofday converts between "HH:MM" wall-clock strings and minute
// offsets from midnight.
package timeofday

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "timetable/internal/platform/errors"
)

// SlotMinutes is the row granularity of the timetable grid.
const SlotMinutes = 5

// ParseError reports a time string that is not two colon-separated integers.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse time %q: %s", e.Input, e.Reason)
}

// Unwrap lets callers match parse failures with apperrors.ErrInvalidInput.
func (e *ParseError) Unwrap() error { return apperrors.ErrInvalidInput }

// TimeToMinutes parses "H:MM" or "HH:MM" into minutes from midnight.
func TimeToMinutes(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(mm, ":") {
		return 0, &ParseError{Input: s, Reason: "expected HH:MM"}
	}
	hour, err := parseField(hh)
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "hour " + err.Error()}
	}
	minute, err := parseField(mm)
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "minute " + err.Error()}
	}
	if minute > 59 {
		return 0, &ParseError{Input: s, Reason: "minute out of range"}
	}
	return hour*60 + minute, nil
}

// MinutesToTime formats a minute offset as zero-padded "HH:MM".
func MinutesToTime(m int) (string, error) {
	if m < 0 {
		return "", fmt.Errorf("minutes %d is negative: %w", m, apperrors.ErrInvalidInput)
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60), nil
}

// MustMinutesToTime is MinutesToTime for offsets known to be non-negative.
func MustMinutesToTime(m int) string {
	s, err := MinutesToTime(m)
	if err != nil {
		panic(err)
	}
	return s
}

func parseField(s string) (int, error) {
	if s == "" || len(s) > 2 {
		return 0, fmt.Errorf("must be one or two digits")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("must be digits")
		}
	}
	return strconv.Atoi(s)
}

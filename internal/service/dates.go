package service

import (
	"errors"
	"strings"
	"time"
)

var errBadDate = errors.New("fecha inválida")

// parseDay parses a calendar day ("2006-01-02").
func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errBadDate
	}
	return t, nil
}

// parseInstant parses RFC 3339 or falls back to a bare day.
func parseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return parseDay(s)
}

// validTimeRange checks the "HH:MM - HH:MM" form and that it runs
// forward. An empty range is allowed.
func validTimeRange(s string) bool {
	if s == "" {
		return true
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return false
	}
	start, err1 := time.Parse("15:04", strings.TrimSpace(parts[0]))
	end, err2 := time.Parse("15:04", strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return false
	}
	return start.Before(end)
}

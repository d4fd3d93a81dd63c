// Package dates normalizes the calendar dates exchanged with the UI.
// Dates travel as YYYY-MM-DD strings and competence months as YYYY-MM.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var dateLayouts = []string{
	DateLayout,
	"02/01/2006",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var monthLayouts = []string{
	MonthLayout,
	"01/2006",
	"2006/01",
}

// Parse reads s in any accepted date layout.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if layout == time.RFC3339 || layout == time.RFC3339Nano {
				// keep the calendar day the user saw
				return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
			}
			return t, true
		}
	}
	return time.Time{}, false
}

// Normalize returns s as YYYY-MM-DD, or "" when it is not a date.
func Normalize(s string) string {
	t, ok := Parse(s)
	if !ok {
		return ""
	}
	return t.Format(DateLayout)
}

// NormalizeMonth returns s as YYYY-MM. Full dates are reduced to their month.
func NormalizeMonth(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(MonthLayout)
		}
	}
	if t, ok := Parse(s); ok {
		return t.Format(MonthLayout)
	}
	return ""
}

// Today returns the calendar day of now in UTC as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

// MonthBounds returns [first day of month, first day of next month).
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// InMonth reports whether the YYYY-MM-DD date falls inside the given month.
func InMonth(date string, year, month int) bool {
	t, ok := Parse(date)
	if !ok {
		return false
	}
	start, end := MonthBounds(year, month)
	return !t.Before(start) && t.Before(end)
}

// ValidMonth checks a month/year pair coming from query strings.
func ValidMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range", month)
	}
	if year < 1900 || year > 9999 {
		return fmt.Errorf("year %d out of range", year)
	}
	return nil
}

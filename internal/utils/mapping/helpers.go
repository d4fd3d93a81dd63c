package mapping

import (
	"time"

	"github.com/guibecker772/advisor-control/internal/utils/dates"
)

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nullableDate turns a YYYY-MM-DD string into a DATE parameter.
func nullableDate(s string) *time.Time {
	t, ok := dates.Parse(s)
	if !ok {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dates.DateLayout)
}

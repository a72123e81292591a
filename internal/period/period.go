// Package period handles month keys and period selectors.
//
// A month key is a zero-padded YYYY-MM string, so lexical order is
// chronological order. A selector is either a month key or the YYYY-ALL
// year sentinel.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
)

// YearSuffix marks a selector that aggregates a whole year.
const YearSuffix = "-ALL"

// Selector picks the transactions a calculation looks at.
type Selector string

// Key returns the YYYY-MM month key for t.
func Key(t time.Time) string {
	return t.Format("2006-01")
}

// Month builds a month selector for t.
func Month(t time.Time) Selector {
	return Selector(Key(t))
}

// Year builds the year-aggregate selector for year.
func Year(year int) Selector {
	return Selector(fmt.Sprintf("%04d%s", year, YearSuffix))
}

// Parse validates s as a month key or year sentinel.
func Parse(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if year, ok := strings.CutSuffix(s, YearSuffix); ok {
		if !isYear(year) {
			return "", fmt.Errorf("%w: %q", common.ErrInvalidPeriod, s)
		}
		return Selector(s), nil
	}
	if _, err := time.Parse("2006-01", s); err != nil || len(s) != 7 {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidPeriod, s)
	}
	return Selector(s), nil
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// IsYear reports whether the selector is a year aggregate.
func (s Selector) IsYear() bool {
	return strings.HasSuffix(string(s), YearSuffix)
}

// YearPrefix returns the YYYY part of the selector.
func (s Selector) YearPrefix() string {
	if len(s) < 4 {
		return string(s)
	}
	return string(s)[:4]
}

// Matches reports whether a transaction's month key falls inside the selector.
func (s Selector) Matches(key string) bool {
	if s.IsYear() {
		return strings.HasPrefix(key, s.YearPrefix()+"-")
	}
	return key == string(s)
}

// String implements fmt.Stringer.
func (s Selector) String() string {
	return string(s)
}

// YearOf returns the year prefix of a month key.
func YearOf(key string) string {
	if len(key) < 4 {
		return key
	}
	return key[:4]
}

// AddMonths shifts a month key by n months. Malformed keys are returned as-is.
func AddMonths(key string, n int) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return Key(t.AddDate(0, n, 0))
}

// Previous returns the month key before key.
func Previous(key string) string {
	return AddMonths(key, -1)
}

// PreviousYear returns the YYYY year before year. Malformed years are
// returned as-is.
func PreviousYear(year string) string {
	if !isYear(year) {
		return year
	}
	n, _ := strconv.Atoi(year)
	return fmt.Sprintf("%04d", n-1)
}

// AddCalendarMonths adds n calendar months to t, clamping the day to the
// last day of the target month so Jan 31 + 1 month lands on Feb 28 or 29.
func AddCalendarMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, n, 0)
	lastDay := target.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

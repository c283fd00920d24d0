// Package datetime provides date utility functions for calendar-day arithmetic.
package datetime

import "time"

// DateLayout is the format expected for date inputs and is also the output
// date format.
const DateLayout = "2006-01-02"

// MustParseDate parses a date string using DateLayout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// AddDays returns the date offset by the given number of calendar days.
func AddDays(date time.Time, days int) time.Time {
	return date.AddDate(0, 0, days)
}

// DaysBetween returns the number of whole days from first to second,
// truncating both to midnight to ignore time-of-day components.
func DaysBetween(first, second time.Time) int {
	firstMidnight := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
	secondMidnight := time.Date(second.Year(), second.Month(), second.Day(), 0, 0, 0, 0, time.UTC)
	return int(secondMidnight.Sub(firstMidnight).Hours() / 24)
}

// WeeksBetween returns the number of whole weeks from first to second.
func WeeksBetween(first, second time.Time) int {
	days := DaysBetween(first, second)
	if days < 0 {
		return -((-days) / 7)
	}
	return days / 7
}

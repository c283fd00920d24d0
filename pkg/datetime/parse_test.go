package datetime

import (
	"testing"
	"time"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		days     int
		expected string
	}{
		{name: "Naegele full term", date: "2024-03-01", days: 280, expected: "2024-12-06"},
		{name: "Conception to due", date: "2024-03-15", days: 266, expected: "2024-12-06"},
		{name: "Across leap day", date: "2024-02-27", days: 3, expected: "2024-03-01"},
		{name: "Negative offset", date: "2024-03-15", days: -14, expected: "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddDays(MustParseDate(tt.date), tt.days)
			if got.Format(DateLayout) != tt.expected {
				t.Errorf("AddDays(%s, %d) = %s, expected %s",
					tt.date, tt.days, got.Format(DateLayout), tt.expected)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		expected int
	}{
		{name: "Same day", first: "2024-03-01", second: "2024-03-01", expected: 0},
		{name: "One week", first: "2024-03-01", second: "2024-03-08", expected: 7},
		{name: "Reversed", first: "2024-03-08", second: "2024-03-01", expected: -7},
		{name: "Full gestation", first: "2024-03-01", second: "2024-12-06", expected: 280},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysBetween(MustParseDate(tt.first), MustParseDate(tt.second))
			if got != tt.expected {
				t.Errorf("DaysBetween(%s, %s) = %d, expected %d", tt.first, tt.second, got, tt.expected)
			}
		})
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	first := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	second := time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(first, second); got != 1 {
		t.Errorf("DaysBetween across midnight = %d, expected 1", got)
	}
}

func TestWeeksBetween(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		expected int
	}{
		{name: "Exactly eight weeks", first: "2024-03-01", second: "2024-04-26", expected: 8},
		{name: "Partial week floors", first: "2024-03-01", second: "2024-03-13", expected: 1},
		{name: "Under a week", first: "2024-03-01", second: "2024-03-06", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeeksBetween(MustParseDate(tt.first), MustParseDate(tt.second))
			if got != tt.expected {
				t.Errorf("WeeksBetween(%s, %s) = %d, expected %d", tt.first, tt.second, got, tt.expected)
			}
		})
	}
}

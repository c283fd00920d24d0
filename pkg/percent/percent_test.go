package percent

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name     string
		pct      float64
		value    float64
		expected float64
	}{
		{name: "Quarter of two hundred", pct: 25, value: 200, expected: 50},
		{name: "Zero percent", pct: 0, value: 123, expected: 0},
		{name: "Over one hundred", pct: 150, value: 40, expected: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.pct, tt.value); got != tt.expected {
				t.Errorf("Of(%v, %v) = %v, expected %v", tt.pct, tt.value, got, tt.expected)
			}
		})
	}
}

func TestWhatPercent(t *testing.T) {
	got, err := WhatPercent(25, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 12.5 {
		t.Errorf("WhatPercent(25, 200) = %v, expected 12.5", got)
	}

	if _, err := WhatPercent(25, 0); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("error = %v, expected ErrZeroDenominator", err)
	}
}

func TestIncreaseBy(t *testing.T) {
	if got := IncreaseBy(100, 10); got != 110 {
		t.Errorf("IncreaseBy(100, 10) = %v, expected 110", got)
	}
}

func TestDecreaseBy(t *testing.T) {
	if got := DecreaseBy(100, 10); got != 90 {
		t.Errorf("DecreaseBy(100, 10) = %v, expected 90", got)
	}
}

func TestChange(t *testing.T) {
	tests := []struct {
		name     string
		oldValue float64
		newValue float64
		expected float64
	}{
		{name: "Fifty percent increase", oldValue: 100, newValue: 150, expected: 50},
		{name: "Decrease", oldValue: 200, newValue: 150, expected: -25},
		{name: "No change", oldValue: 5, newValue: 5, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Change(tt.oldValue, tt.newValue)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Change(%v, %v) = %v, expected %v", tt.oldValue, tt.newValue, got, tt.expected)
			}
		})
	}

	if _, err := Change(0, 100); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("error = %v, expected ErrZeroDenominator", err)
	}
}

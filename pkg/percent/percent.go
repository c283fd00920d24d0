// Package percent provides the five standalone percentage operations.
// Ratio operations with a zero base report ErrZeroDenominator instead of
// propagating Inf or NaN to callers.
package percent

import "errors"

// ErrZeroDenominator is returned when a ratio's base value is zero.
var ErrZeroDenominator = errors.New("denominator must not be zero")

// Of returns pct percent of value.
func Of(pct, value float64) float64 {
	return pct * value / 100
}

// WhatPercent returns what percentage a is of b.
func WhatPercent(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrZeroDenominator
	}
	return a / b * 100, nil
}

// IncreaseBy returns value increased by pct percent.
func IncreaseBy(value, pct float64) float64 {
	return value + value*pct/100
}

// DecreaseBy returns value decreased by pct percent.
func DecreaseBy(value, pct float64) float64 {
	return value - value*pct/100
}

// Change returns the percentage change from oldValue to newValue.
func Change(oldValue, newValue float64) (float64, error) {
	if oldValue == 0 {
		return 0, ErrZeroDenominator
	}
	return (newValue - oldValue) / oldValue * 100, nil
}

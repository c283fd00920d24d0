package percent

import "errors"

// Operation names one of the five percentage calculations.
type Operation string

const (
	OpPercentOf     Operation = "percentOf"
	OpWhatPercent   Operation = "whatPercent"
	OpIncreaseBy    Operation = "increaseBy"
	OpDecreaseBy    Operation = "decreaseBy"
	OpPercentChange Operation = "percentChange"
)

// ErrInvalidOperation is returned for unrecognized operation names.
var ErrInvalidOperation = errors.New("unknown percentage operation")

// Apply dispatches an operation by name. The meaning of a and b follows
// each operation's signature: Of(pct, value), WhatPercent(part, whole),
// IncreaseBy(value, pct), DecreaseBy(value, pct), Change(old, new).
func Apply(op Operation, a, b float64) (float64, error) {
	switch op {
	case OpPercentOf:
		return Of(a, b), nil
	case OpWhatPercent:
		return WhatPercent(a, b)
	case OpIncreaseBy:
		return IncreaseBy(a, b), nil
	case OpDecreaseBy:
		return DecreaseBy(a, b), nil
	case OpPercentChange:
		return Change(a, b)
	default:
		return 0, ErrInvalidOperation
	}
}

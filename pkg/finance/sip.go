// Package finance provides the closed-form money calculators: SIP returns,
// mortgage amortization, compound interest, GST, and discounts. Every
// calculator is a pure function of its input; rounding for display is left
// to callers except where the contract itself names a unit (cents for
// discounts, whole units for SIP).
package finance

import (
	"errors"
	"math"

	"github.com/calchub/calchub/pkg/constants"
	"github.com/calchub/calchub/pkg/mathutil"
)

// SIP input domain errors.
var (
	ErrNonPositiveInvestment = errors.New("monthly investment must be positive")
	ErrNegativeRate          = errors.New("rate must not be negative")
	ErrNonPositiveYears      = errors.New("years must be positive")
)

// SIPInput holds the systematic investment plan parameters.
type SIPInput struct {
	MonthlyInvestment float64 `json:"monthlyInvestment"`
	AnnualReturnPct   float64 `json:"annualReturnPct"`
	Years             int     `json:"years"`
}

// SIPResult holds the projected outcome of a SIP, in whole currency units.
type SIPResult struct {
	Invested    float64 `json:"invested"`
	Returns     float64 `json:"returns"`
	FutureValue float64 `json:"futureValue"`
}

// CalculateSIP projects the future value of fixed monthly investments
// compounded at the expected annual return. A zero return degenerates to
// the plain sum of contributions.
func CalculateSIP(in SIPInput) (SIPResult, error) {
	if in.MonthlyInvestment <= 0 {
		return SIPResult{}, ErrNonPositiveInvestment
	}
	if in.AnnualReturnPct < 0 {
		return SIPResult{}, ErrNegativeRate
	}
	if in.Years <= 0 {
		return SIPResult{}, ErrNonPositiveYears
	}

	months := in.Years * constants.MonthsPerYear
	monthlyRate := in.AnnualReturnPct / constants.MonthsPerYear / constants.PercentageMultiplier

	invested := in.MonthlyInvestment * float64(months)
	futureValue := invested
	if monthlyRate != 0 {
		growth := math.Pow(1+monthlyRate, float64(months))
		futureValue = in.MonthlyInvestment * ((growth - 1) / monthlyRate) * (1 + monthlyRate)
	}

	// Amounts are reported in whole currency units.
	return SIPResult{
		Invested:    mathutil.RoundWhole(invested),
		Returns:     mathutil.RoundWhole(futureValue - invested),
		FutureValue: mathutil.RoundWhole(futureValue),
	}, nil
}

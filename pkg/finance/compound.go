package finance

import (
	"errors"
	"math"

	"github.com/calchub/calchub/pkg/constants"
)

// Compound interest input domain errors.
var (
	ErrNonPositiveAmount  = errors.New("amount must be positive")
	ErrInvalidCompounding = errors.New("compounding frequency must be 1, 2, 4, 12, or 365")
)

// CompoundingFrequencies are the supported compounding periods per year.
var CompoundingFrequencies = []int{1, 2, 4, 12, 365}

// CompoundInput holds the compound interest parameters.
type CompoundInput struct {
	Principal        float64 `json:"principal"`
	AnnualRatePct    float64 `json:"annualRatePct"`
	Years            int     `json:"years"`
	CompoundsPerYear int     `json:"compoundsPerYear"`
}

// CompoundResult holds the grown amount and the interest earned.
type CompoundResult struct {
	Amount   float64 `json:"amount"`
	Interest float64 `json:"interest"`
}

// CalculateCompound grows a principal at the given annual rate compounded
// n times per year.
func CalculateCompound(in CompoundInput) (CompoundResult, error) {
	if in.Principal <= 0 {
		return CompoundResult{}, ErrNonPositiveAmount
	}
	if in.AnnualRatePct < 0 {
		return CompoundResult{}, ErrNegativeRate
	}
	if in.Years <= 0 {
		return CompoundResult{}, ErrNonPositiveYears
	}
	if !validCompounding(in.CompoundsPerYear) {
		return CompoundResult{}, ErrInvalidCompounding
	}

	n := float64(in.CompoundsPerYear)
	rate := in.AnnualRatePct / constants.PercentageMultiplier
	amount := in.Principal * math.Pow(1+rate/n, n*float64(in.Years))

	return CompoundResult{
		Amount:   amount,
		Interest: amount - in.Principal,
	}, nil
}

func validCompounding(n int) bool {
	for _, freq := range CompoundingFrequencies {
		if n == freq {
			return true
		}
	}
	return false
}

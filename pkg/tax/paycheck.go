// Package tax computes Indian income tax for the FY2024-25 old and new
// regimes, expressed as progressive bracket tables.
package tax

import (
	"errors"
	"math"

	"github.com/calchub/calchub/pkg/constants"
	"github.com/calchub/calchub/pkg/mathutil"
)

// Regime selects the bracket table applied to taxable income.
type Regime string

const (
	// NewRegime taxes the gross salary with no deductions.
	NewRegime Regime = "new"
	// OldRegime subtracts declared deductions plus the standard deduction.
	OldRegime Regime = "old"
)

// Paycheck input domain errors.
var (
	ErrNonPositiveSalary  = errors.New("gross salary must be positive")
	ErrNegativeDeductions = errors.New("deductions must not be negative")
	ErrInvalidRegime      = errors.New("regime must be old or new")
)

// bracket applies rate to income above threshold; base is the tax owed on
// everything below the threshold.
type bracket struct {
	threshold float64
	base      float64
	rate      float64
}

// FY2024-25 slabs, highest threshold first so the walk stops at the first
// bracket at or below the taxable income.
var (
	newRegimeBrackets = []bracket{
		{threshold: 1500000, base: 140000, rate: 0.30},
		{threshold: 1200000, base: 80000, rate: 0.20},
		{threshold: 1000000, base: 50000, rate: 0.15},
		{threshold: 700000, base: 20000, rate: 0.10},
		{threshold: 300000, base: 0, rate: 0.05},
	}
	oldRegimeBrackets = []bracket{
		{threshold: 1000000, base: 112500, rate: 0.30},
		{threshold: 500000, base: 12500, rate: 0.20},
		{threshold: 250000, base: 0, rate: 0.05},
	}
)

// PaycheckInput holds the salary parameters. Deductions only apply under
// the old regime.
type PaycheckInput struct {
	GrossSalary float64 `json:"grossSalary"`
	Deductions  float64 `json:"deductions"`
	Regime      Regime  `json:"regime"`
}

// PaycheckResult holds the tax split and take-home amounts in rupees.
type PaycheckResult struct {
	TaxableIncome   float64 `json:"taxableIncome"`
	BaseTax         float64 `json:"baseTax"`
	Tax             float64 `json:"tax"`
	TakeHome        float64 `json:"takeHome"`
	MonthlyTakeHome float64 `json:"monthlyTakeHome"`
}

// CalculatePaycheck applies the selected regime's progressive brackets to
// the taxable income and adds the 4% health & education cess. Tax and
// take-home figures are rounded to whole rupees.
func CalculatePaycheck(in PaycheckInput) (PaycheckResult, error) {
	if in.GrossSalary <= 0 {
		return PaycheckResult{}, ErrNonPositiveSalary
	}
	if in.Deductions < 0 {
		return PaycheckResult{}, ErrNegativeDeductions
	}

	var taxable float64
	var brackets []bracket
	switch in.Regime {
	case NewRegime:
		taxable = in.GrossSalary
		brackets = newRegimeBrackets
	case OldRegime:
		taxable = math.Max(0, in.GrossSalary-in.Deductions-constants.StandardDeduction)
		brackets = oldRegimeBrackets
	default:
		return PaycheckResult{}, ErrInvalidRegime
	}

	baseTax := applyBrackets(brackets, taxable)
	tax := baseTax * (1 + constants.CessRate)
	takeHome := in.GrossSalary - tax

	return PaycheckResult{
		TaxableIncome:   taxable,
		BaseTax:         baseTax,
		Tax:             mathutil.RoundWhole(tax),
		TakeHome:        mathutil.RoundWhole(takeHome),
		MonthlyTakeHome: mathutil.RoundWhole(takeHome / constants.MonthsPerYear),
	}, nil
}

func applyBrackets(brackets []bracket, taxable float64) float64 {
	for _, b := range brackets {
		if taxable > b.threshold {
			return b.base + (taxable-b.threshold)*b.rate
		}
	}
	return 0
}

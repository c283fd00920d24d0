package finance

import (
	"errors"
	"math"

	"github.com/calchub/calchub/pkg/constants"
)

// Mortgage input domain errors.
var (
	ErrNonPositivePrice     = errors.New("home price must be positive")
	ErrDownPaymentRange     = errors.New("down payment must be between zero and the home price")
	ErrNonPositivePrincipal = errors.New("principal must be positive")
)

// MortgageInput holds the home loan parameters.
type MortgageInput struct {
	HomePrice     float64 `json:"homePrice"`
	DownPayment   float64 `json:"downPayment"`
	AnnualRatePct float64 `json:"annualRatePct"`
	Years         int     `json:"years"`
}

// MortgageResult holds the amortized payment and loan totals.
type MortgageResult struct {
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// CalculateMortgage computes the monthly payment for a fixed-rate home loan
// using the standard amortization formula, plus the total paid and total
// interest over the term. A zero rate divides the principal evenly.
func CalculateMortgage(in MortgageInput) (MortgageResult, error) {
	if in.HomePrice <= 0 {
		return MortgageResult{}, ErrNonPositivePrice
	}
	if in.DownPayment < 0 || in.DownPayment > in.HomePrice {
		return MortgageResult{}, ErrDownPaymentRange
	}
	if in.AnnualRatePct < 0 {
		return MortgageResult{}, ErrNegativeRate
	}
	if in.Years <= 0 {
		return MortgageResult{}, ErrNonPositiveYears
	}

	principal := in.HomePrice - in.DownPayment
	if principal <= 0 {
		return MortgageResult{}, ErrNonPositivePrincipal
	}

	n := in.Years * constants.MonthsPerYear
	monthlyRate := in.AnnualRatePct / constants.PercentageMultiplier / constants.MonthsPerYear

	var payment float64
	if monthlyRate == 0 {
		payment = principal / float64(n)
	} else {
		power := math.Pow(1+monthlyRate, float64(n))
		payment = principal * (monthlyRate * power) / (power - 1)
	}

	totalPayment := payment * float64(n)
	return MortgageResult{
		Principal:      principal,
		MonthlyPayment: payment,
		TotalPayment:   totalPayment,
		TotalInterest:  totalPayment - principal,
	}, nil
}

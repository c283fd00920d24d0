package controller

import (
	"time"

	"github.com/calchub/calchub/pkg/finance"
	"github.com/calchub/calchub/pkg/health"
	"github.com/calchub/calchub/pkg/percent"
	"github.com/calchub/calchub/pkg/pregnancy"
	"github.com/calchub/calchub/pkg/tax"
)

// Constructors for each calculator page, seeded with the defaults the pages
// open with.

// NewSIP returns the SIP page controller.
func NewSIP() *Controller[finance.SIPInput, finance.SIPResult] {
	return New(finance.CalculateSIP, finance.SIPInput{
		MonthlyInvestment: 5000,
		AnnualReturnPct:   12,
		Years:             10,
	})
}

// NewMortgage returns the mortgage page controller.
func NewMortgage() *Controller[finance.MortgageInput, finance.MortgageResult] {
	return New(finance.CalculateMortgage, finance.MortgageInput{
		HomePrice:     300000,
		DownPayment:   60000,
		AnnualRatePct: 6.5,
		Years:         30,
	})
}

// NewCompound returns the compound interest page controller.
func NewCompound() *Controller[finance.CompoundInput, finance.CompoundResult] {
	return New(finance.CalculateCompound, finance.CompoundInput{
		Principal:        10000,
		AnnualRatePct:    8,
		Years:            10,
		CompoundsPerYear: 12,
	})
}

// NewGST returns the GST page controller.
func NewGST() *Controller[finance.GSTInput, finance.GSTResult] {
	return New(finance.CalculateGST, finance.GSTInput{
		Amount:  1000,
		RatePct: 18,
		Mode:    finance.GSTExclusive,
	})
}

// NewDiscount returns the discount page controller.
func NewDiscount() *Controller[finance.DiscountInput, finance.DiscountResult] {
	return New(finance.CalculateDiscount, finance.DiscountInput{
		Price:       100,
		DiscountPct: 20,
	})
}

// NewBMI returns the BMI page controller.
func NewBMI() *Controller[health.BMIInput, health.BMIResult] {
	return New(health.CalculateBMI, health.BMIInput{
		Units:    health.Metric,
		WeightKg: 70,
		HeightCm: 170,
	})
}

// NewCalorie returns the calorie page controller.
func NewCalorie() *Controller[health.CalorieInput, health.CalorieResult] {
	return New(health.CalculateCalories, health.CalorieInput{
		Units:              health.Metric,
		Gender:             health.Male,
		AgeYears:           30,
		WeightKg:           70,
		HeightCm:           170,
		ActivityMultiplier: 1.55,
	})
}

// PercentageInput names the operation and its two operands.
type PercentageInput struct {
	Operation percent.Operation
	A         float64
	B         float64
}

// NewPercentage returns the percentage page controller.
func NewPercentage() *Controller[PercentageInput, float64] {
	compute := func(in PercentageInput) (float64, error) {
		return percent.Apply(in.Operation, in.A, in.B)
	}
	return New(compute, PercentageInput{
		Operation: percent.OpPercentOf,
		A:         25,
		B:         200,
	})
}

// NewPregnancy returns the due date page controller. The clock is injected
// so the current week stays testable.
func NewPregnancy(now func() time.Time) *Controller[pregnancy.Input, pregnancy.Result] {
	if now == nil {
		now = time.Now
	}
	compute := func(in pregnancy.Input) (pregnancy.Result, error) {
		return pregnancy.Calculate(in, now())
	}
	return New(compute, pregnancy.Input{
		Method: pregnancy.MethodLMP,
	})
}

// NewPaycheck returns the paycheck page controller.
func NewPaycheck() *Controller[tax.PaycheckInput, tax.PaycheckResult] {
	return New(tax.CalculatePaycheck, tax.PaycheckInput{
		GrossSalary: 1200000,
		Deductions:  50000,
		Regime:      tax.NewRegime,
	})
}

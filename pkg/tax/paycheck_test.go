package tax

import (
	"errors"
	"testing"
)

func TestCalculatePaycheckNewRegime(t *testing.T) {
	tests := []struct {
		name            string
		gross           float64
		expectedBaseTax float64
		expectedTax     float64
	}{
		{name: "Below exemption limit", gross: 300000, expectedBaseTax: 0, expectedTax: 0},
		{name: "Five percent slab", gross: 500000, expectedBaseTax: 10000, expectedTax: 10400},
		{name: "Exactly at slab boundary", gross: 1000000, expectedBaseTax: 50000, expectedTax: 52000},
		{name: "Fifteen percent slab", gross: 1100000, expectedBaseTax: 65000, expectedTax: 67600},
		{name: "Top slab", gross: 2000000, expectedBaseTax: 290000, expectedTax: 301600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculatePaycheck(PaycheckInput{GrossSalary: tt.gross, Regime: NewRegime})
			if err != nil {
				t.Fatalf("CalculatePaycheck() unexpected error: %v", err)
			}
			if result.BaseTax != tt.expectedBaseTax {
				t.Errorf("BaseTax = %v, expected %v", result.BaseTax, tt.expectedBaseTax)
			}
			if result.Tax != tt.expectedTax {
				t.Errorf("Tax = %v, expected %v", result.Tax, tt.expectedTax)
			}
			if result.TaxableIncome != tt.gross {
				t.Errorf("TaxableIncome = %v, expected the gross %v under the new regime", result.TaxableIncome, tt.gross)
			}
		})
	}
}

func TestCalculatePaycheckOldRegime(t *testing.T) {
	tests := []struct {
		name            string
		gross           float64
		deductions      float64
		expectedTaxable float64
		expectedBaseTax float64
	}{
		{
			name:  "Standard deduction only",
			gross: 600000, deductions: 0,
			expectedTaxable: 550000,
			expectedBaseTax: 22500, // 12500 + 50000*0.20
		},
		{
			name:  "With declared deductions",
			gross: 1200000, deductions: 150000,
			expectedTaxable: 1000000,
			expectedBaseTax: 112500,
		},
		{
			name:  "Deductions push taxable to zero",
			gross: 200000, deductions: 250000,
			expectedTaxable: 0,
			expectedBaseTax: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculatePaycheck(PaycheckInput{
				GrossSalary: tt.gross,
				Deductions:  tt.deductions,
				Regime:      OldRegime,
			})
			if err != nil {
				t.Fatalf("CalculatePaycheck() unexpected error: %v", err)
			}
			if result.TaxableIncome != tt.expectedTaxable {
				t.Errorf("TaxableIncome = %v, expected %v", result.TaxableIncome, tt.expectedTaxable)
			}
			if result.BaseTax != tt.expectedBaseTax {
				t.Errorf("BaseTax = %v, expected %v", result.BaseTax, tt.expectedBaseTax)
			}
		})
	}
}

func TestCalculatePaycheckTakeHome(t *testing.T) {
	result, err := CalculatePaycheck(PaycheckInput{GrossSalary: 1000000, Regime: NewRegime})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TakeHome != 948000 {
		t.Errorf("TakeHome = %v, expected 948000", result.TakeHome)
	}
	if result.MonthlyTakeHome != 79000 {
		t.Errorf("MonthlyTakeHome = %v, expected 79000", result.MonthlyTakeHome)
	}
}

func TestCalculatePaycheckDomainErrors(t *testing.T) {
	tests := []struct {
		name  string
		input PaycheckInput
		err   error
	}{
		{name: "Zero salary", input: PaycheckInput{GrossSalary: 0, Regime: NewRegime}, err: ErrNonPositiveSalary},
		{name: "Negative deductions", input: PaycheckInput{GrossSalary: 100000, Deductions: -1, Regime: OldRegime}, err: ErrNegativeDeductions},
		{name: "Unknown regime", input: PaycheckInput{GrossSalary: 100000, Regime: "flat"}, err: ErrInvalidRegime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CalculatePaycheck(tt.input); !errors.Is(err, tt.err) {
				t.Errorf("error = %v, expected %v", err, tt.err)
			}
		})
	}
}

// Package health provides the body metric calculators: BMI and daily
// calorie needs (Mifflin-St Jeor).
package health

import (
	"errors"

	"github.com/calchub/calchub/pkg/constants"
	"github.com/calchub/calchub/pkg/mathutil"
)

// UnitSystem selects between metric and imperial measurements.
type UnitSystem string

const (
	// Metric expects kilograms and centimeters.
	Metric UnitSystem = "metric"
	// Imperial expects pounds, feet, and inches.
	Imperial UnitSystem = "imperial"
)

// Body metric input domain errors.
var (
	ErrNonPositiveWeight = errors.New("weight must be positive")
	ErrNonPositiveHeight = errors.New("height must be positive")
	ErrInvalidUnitSystem = errors.New("unit system must be metric or imperial")
)

// BMI category boundaries. Each boundary belongs to the higher category:
// exactly 18.5 is normal, exactly 25 is overweight, exactly 30 is obese.
const (
	underweightBelow = 18.5
	overweightAt     = 25.0
	obeseAt          = 30.0
)

// BMIInput holds the body measurements. Metric uses WeightKg and HeightCm;
// imperial uses WeightLbs, HeightFt, and HeightIn.
type BMIInput struct {
	Units     UnitSystem `json:"units"`
	WeightKg  float64    `json:"weightKg,omitempty"`
	HeightCm  float64    `json:"heightCm,omitempty"`
	WeightLbs float64    `json:"weightLbs,omitempty"`
	HeightFt  int        `json:"heightFt,omitempty"`
	HeightIn  int        `json:"heightIn,omitempty"`
}

// BMIResult holds the body mass index rounded to one decimal and its
// category, classified before rounding.
type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// CalculateBMI computes the body mass index for either unit system.
func CalculateBMI(in BMIInput) (BMIResult, error) {
	var bmi float64
	switch in.Units {
	case Metric:
		if in.WeightKg <= 0 {
			return BMIResult{}, ErrNonPositiveWeight
		}
		if in.HeightCm <= 0 {
			return BMIResult{}, ErrNonPositiveHeight
		}
		heightM := in.HeightCm / 100
		bmi = in.WeightKg / (heightM * heightM)
	case Imperial:
		if in.WeightLbs <= 0 {
			return BMIResult{}, ErrNonPositiveWeight
		}
		totalInches := float64(in.HeightFt*constants.InchesPerFoot + in.HeightIn)
		if totalInches <= 0 {
			return BMIResult{}, ErrNonPositiveHeight
		}
		bmi = in.WeightLbs / (totalInches * totalInches) * constants.ImperialBMIFactor
	default:
		return BMIResult{}, ErrInvalidUnitSystem
	}

	return BMIResult{
		BMI:      mathutil.RoundTo(bmi, 1),
		Category: CategoryFor(bmi),
	}, nil
}

// CategoryFor classifies a raw BMI value. Boundaries are half-open on the
// lower bound.
func CategoryFor(bmi float64) string {
	switch {
	case bmi < underweightBelow:
		return "Underweight"
	case bmi < overweightAt:
		return "Normal"
	case bmi < obeseAt:
		return "Overweight"
	default:
		return "Obese"
	}
}

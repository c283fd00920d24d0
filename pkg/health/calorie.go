package health

import (
	"errors"

	"github.com/calchub/calchub/pkg/constants"
	"github.com/calchub/calchub/pkg/mathutil"
)

// Gender selects the Mifflin-St Jeor constant term.
type Gender string

const (
	// Male adds 5 to the base equation.
	Male Gender = "male"
	// Female subtracts 161 from the base equation.
	Female Gender = "female"
)

// Calorie input domain errors.
var (
	ErrNonPositiveAge  = errors.New("age must be positive")
	ErrInvalidGender   = errors.New("gender must be male or female")
	ErrInvalidActivity = errors.New("unsupported activity multiplier")
)

// ActivityMultipliers are the supported TDEE activity factors, from
// sedentary to extremely active.
var ActivityMultipliers = []float64{1.2, 1.375, 1.55, 1.725, 1.9}

// CalorieInput holds the profile for daily energy estimation. Imperial
// measurements are converted to metric before the formula is applied.
type CalorieInput struct {
	Units              UnitSystem `json:"units"`
	Gender             Gender     `json:"gender"`
	AgeYears           int        `json:"ageYears"`
	WeightKg           float64    `json:"weightKg,omitempty"`
	HeightCm           float64    `json:"heightCm,omitempty"`
	WeightLbs          float64    `json:"weightLbs,omitempty"`
	HeightFt           int        `json:"heightFt,omitempty"`
	HeightIn           int        `json:"heightIn,omitempty"`
	ActivityMultiplier float64    `json:"activityMultiplier"`
}

// CalorieResult holds the estimated daily energy numbers in whole kcal.
type CalorieResult struct {
	BMR              float64 `json:"bmr"`
	TDEE             float64 `json:"tdee"`
	WeightLossTarget float64 `json:"weightLossTarget"`
	WeightGainTarget float64 `json:"weightGainTarget"`
}

// CalculateCalories estimates BMR with the Mifflin-St Jeor equation and
// scales it by the activity multiplier for TDEE. Loss and gain targets
// offset the TDEE by a fixed 500 kcal.
func CalculateCalories(in CalorieInput) (CalorieResult, error) {
	if in.AgeYears <= 0 {
		return CalorieResult{}, ErrNonPositiveAge
	}
	if !validActivity(in.ActivityMultiplier) {
		return CalorieResult{}, ErrInvalidActivity
	}

	var weightKg, heightCm float64
	switch in.Units {
	case Metric:
		weightKg = in.WeightKg
		heightCm = in.HeightCm
	case Imperial:
		weightKg = in.WeightLbs * constants.PoundsToKilograms
		heightCm = float64(in.HeightFt*constants.InchesPerFoot+in.HeightIn) * constants.InchesToCentimeters
	default:
		return CalorieResult{}, ErrInvalidUnitSystem
	}
	if weightKg <= 0 {
		return CalorieResult{}, ErrNonPositiveWeight
	}
	if heightCm <= 0 {
		return CalorieResult{}, ErrNonPositiveHeight
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(in.AgeYears)
	var bmr float64
	switch in.Gender {
	case Male:
		bmr = base + 5
	case Female:
		bmr = base - 161
	default:
		return CalorieResult{}, ErrInvalidGender
	}

	// Energy figures are reported in whole kilocalories.
	tdee := bmr * in.ActivityMultiplier
	return CalorieResult{
		BMR:              mathutil.RoundWhole(bmr),
		TDEE:             mathutil.RoundWhole(tdee),
		WeightLossTarget: mathutil.RoundWhole(tdee - constants.DailyDeficitForLoss),
		WeightGainTarget: mathutil.RoundWhole(tdee + constants.DailySurplusForGain),
	}, nil
}

func validActivity(m float64) bool {
	for _, multiplier := range ActivityMultipliers {
		if m == multiplier {
			return true
		}
	}
	return false
}

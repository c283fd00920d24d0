// Package constants provides shared constants for the calchub application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CessRate is the health & education cess applied on Indian income tax
	CessRate = 0.04

	// StandardDeduction is the mandatory standard deduction under the old
	// Indian tax regime, in rupees
	StandardDeduction = 50000
)

// Unit conversion constants
const (
	// PoundsToKilograms converts body weight from lbs to kg
	PoundsToKilograms = 0.453592

	// InchesToCentimeters converts height from inches to cm
	InchesToCentimeters = 2.54

	// InchesPerFoot is the number of inches in a foot
	InchesPerFoot = 12

	// ImperialBMIFactor is the multiplier for the imperial BMI formula
	ImperialBMIFactor = 703
)

// Pregnancy dating constants (Naegele's rule)
const (
	// GestationDays is the full-term pregnancy length from LMP, in days
	GestationDays = 280

	// ConceptionToDueDays is the pregnancy length from conception, in days
	ConceptionToDueDays = 266

	// ConceptionOffsetDays is the assumed gap between LMP and conception
	ConceptionOffsetDays = 14

	// DaysPerWeek is the number of days in a week
	DaysPerWeek = 7
)

// Calorie adjustment constants
const (
	// DailyDeficitForLoss is the calorie deficit targeted for weight loss
	DailyDeficitForLoss = 500

	// DailySurplusForGain is the calorie surplus targeted for weight gain
	DailySurplusForGain = 500
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size (64 KB)
	DefaultMaxBodyBytes int64 = 64 * 1024

	// DefaultCacheTTL is how long computed responses stay cached
	DefaultCacheTTL = "5m"

	// DefaultRateLimitCapacity is the per-client request allowance per window
	DefaultRateLimitCapacity = 120

	// DefaultRateLimitWindow is the rate limiting window
	DefaultRateLimitWindow = "1m"
)

// Tolerance constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

package finance

import (
	"errors"

	"github.com/calchub/calchub/pkg/constants"
)

// GSTMode selects whether the given amount already includes tax.
type GSTMode string

const (
	// GSTExclusive adds tax on top of the amount.
	GSTExclusive GSTMode = "exclusive"
	// GSTInclusive extracts tax already contained in the amount.
	GSTInclusive GSTMode = "inclusive"
)

// ErrInvalidGSTMode is returned for modes other than exclusive/inclusive.
var ErrInvalidGSTMode = errors.New("gst mode must be exclusive or inclusive")

// GSTInput holds the GST parameters.
type GSTInput struct {
	Amount  float64 `json:"amount"`
	RatePct float64 `json:"ratePct"`
	Mode    GSTMode `json:"mode"`
}

// GSTResult breaks an amount into its net, tax, and total components. CGST
// and SGST are the intra-state halves of the tax.
type GSTResult struct {
	Net       float64 `json:"net"`
	GSTAmount float64 `json:"gstAmount"`
	Total     float64 `json:"total"`
	CGST      float64 `json:"cgst"`
	SGST      float64 `json:"sgst"`
}

// CalculateGST applies the GST rate to an amount, either adding tax to a net
// amount (exclusive) or extracting it from a gross amount (inclusive).
func CalculateGST(in GSTInput) (GSTResult, error) {
	if in.Amount <= 0 {
		return GSTResult{}, ErrNonPositiveAmount
	}
	if in.RatePct < 0 {
		return GSTResult{}, ErrNegativeRate
	}

	var res GSTResult
	switch in.Mode {
	case GSTExclusive:
		res.Net = in.Amount
		res.GSTAmount = in.Amount * in.RatePct / constants.PercentageMultiplier
		res.Total = in.Amount + res.GSTAmount
	case GSTInclusive:
		res.Net = in.Amount * constants.PercentageMultiplier / (constants.PercentageMultiplier + in.RatePct)
		res.GSTAmount = in.Amount - res.Net
		res.Total = in.Amount
	default:
		return GSTResult{}, ErrInvalidGSTMode
	}

	res.CGST = res.GSTAmount / 2
	res.SGST = res.GSTAmount / 2
	return res, nil
}

package finance

import (
	"errors"

	"github.com/calchub/calchub/pkg/constants"
	"github.com/calchub/calchub/pkg/mathutil"
)

// ErrDiscountRange is returned when the discount percentage is outside
// [0, 100].
var ErrDiscountRange = errors.New("discount percentage must be between 0 and 100")

// DiscountInput holds the discount parameters.
type DiscountInput struct {
	Price       float64 `json:"price"`
	DiscountPct float64 `json:"discountPct"`
}

// DiscountResult holds the saving and the final price, in cents.
type DiscountResult struct {
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
}

// CalculateDiscount computes the amount saved and the price after discount,
// both rounded to cents.
func CalculateDiscount(in DiscountInput) (DiscountResult, error) {
	if in.Price <= 0 {
		return DiscountResult{}, ErrNonPositiveAmount
	}
	if in.DiscountPct < 0 || in.DiscountPct > 100 {
		return DiscountResult{}, ErrDiscountRange
	}

	discount := in.Price * in.DiscountPct / constants.PercentageMultiplier
	return DiscountResult{
		DiscountAmount: mathutil.Round(discount),
		FinalPrice:     mathutil.Round(in.Price - discount),
	}, nil
}

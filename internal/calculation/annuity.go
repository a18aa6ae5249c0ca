package calculation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// zeroRateEpsilon is the band around zero within which the annuity rate is
// treated as exactly zero, avoiding a 0/0 in the growth formula. The linear
// branch and the formula agree to well below display precision at the
// boundary.
const zeroRateEpsilon = 1e-12

// FutureValue computes the future value of an ordinary annuity: equal
// contributions at the end of each year, compounded annually. The horizon
// may be fractional (payoff months / 12); fractional years compound through
// a real-valued exponent rather than period-by-period accrual.
func FutureValue(annualContrib, annualReturnPercent, years decimal.Decimal) (decimal.Decimal, error) {
	if years.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: horizon cannot be negative, got %s years", ErrInvalidAnnuityParams, years)
	}
	if annualContrib.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: contribution cannot be negative, got %s", ErrInvalidAnnuityParams, annualContrib)
	}
	if years.IsZero() || annualContrib.IsZero() {
		return decimal.Zero, nil
	}

	r := annualReturnPercent.InexactFloat64() / 100.0
	if r <= -1.0 {
		return decimal.Zero, fmt.Errorf("%w: return rate cannot be -100%% or below, got %s%%", ErrInvalidAnnuityParams, annualReturnPercent)
	}
	if math.Abs(r) < zeroRateEpsilon {
		// No growth: contributions accumulate linearly.
		return annualContrib.Mul(years), nil
	}

	// FV = C * ((1+r)^y - 1) / r
	factor := math.Pow(1+r, years.InexactFloat64())
	return annualContrib.Mul(decimal.NewFromFloat((factor - 1) / r)), nil
}

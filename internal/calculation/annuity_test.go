package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureValueReferenceExample(t *testing.T) {
	// 50,000/year at 7% for 20 years ≈ 2,049,774 by the ordinary-annuity
	// formula; 1,000,000 invested, ≈ 1,049,774 earned.
	fv, err := FutureValue(decimal.NewFromInt(50000), decimal.NewFromFloat(7.0), decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.InEpsilon(t, 2049774.0, fv.InexactFloat64(), 1e-4)

	invested := decimal.NewFromInt(50000).Mul(decimal.NewFromInt(20))
	returns := fv.Sub(invested)
	assert.InEpsilon(t, 1049774.0, returns.InexactFloat64(), 1e-3)
}

func TestFutureValueZeroRateIsLinear(t *testing.T) {
	fv, err := FutureValue(decimal.NewFromInt(50000), decimal.Zero, decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.True(t, fv.Equal(decimal.NewFromInt(1000000)), "FV = %s, want 1000000", fv)
}

func TestFutureValueDegenerateInputs(t *testing.T) {
	// Zero contribution or zero horizon both value to zero.
	fv, err := FutureValue(decimal.Zero, decimal.NewFromFloat(7.0), decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.True(t, fv.IsZero())

	fv, err = FutureValue(decimal.NewFromInt(50000), decimal.NewFromFloat(7.0), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, fv.IsZero())
}

func TestFutureValueContinuityAcrossZeroRate(t *testing.T) {
	contrib := decimal.NewFromInt(50000)
	years := decimal.NewFromInt(20)

	linear, err := FutureValue(contrib, decimal.Zero, years)
	require.NoError(t, err)

	// Just above the epsilon band the formula branch must agree with the
	// linear branch to sub-rupee precision on a 1,000,000 accumulation.
	near, err := FutureValue(contrib, decimal.NewFromFloat(1e-7), years)
	require.NoError(t, err)

	diff := near.Sub(linear).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromInt(1)),
		"FV discontinuity across zero rate: %s", diff)
}

func TestFutureValueNegativeRate(t *testing.T) {
	// Negative growth is a valid input; the value stays below the linear
	// accumulation.
	fv, err := FutureValue(decimal.NewFromInt(50000), decimal.NewFromFloat(-2.0), decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.True(t, fv.IsPositive())
	assert.True(t, fv.LessThan(decimal.NewFromInt(1000000)), "FV = %s, want < 1000000", fv)
}

func TestFutureValueFractionalHorizon(t *testing.T) {
	// 222 payoff months -> 18.5 years; FV must sit strictly between the
	// 18- and 19-year values.
	contrib := decimal.NewFromInt(50000)
	rate := decimal.NewFromFloat(7.0)

	fv18, err := FutureValue(contrib, rate, decimal.NewFromInt(18))
	require.NoError(t, err)
	fvFrac, err := FutureValue(contrib, rate, decimal.NewFromFloat(18.5))
	require.NoError(t, err)
	fv19, err := FutureValue(contrib, rate, decimal.NewFromInt(19))
	require.NoError(t, err)

	assert.True(t, fvFrac.GreaterThan(fv18), "FV(18.5) = %s should exceed FV(18) = %s", fvFrac, fv18)
	assert.True(t, fvFrac.LessThan(fv19), "FV(18.5) = %s should be below FV(19) = %s", fvFrac, fv19)
}

func TestFutureValueMonotoneInYearsAndContribution(t *testing.T) {
	rate := decimal.NewFromFloat(7.0)

	prev := decimal.Zero
	for y := 1; y <= 30; y++ {
		fv, err := FutureValue(decimal.NewFromInt(50000), rate, decimal.NewFromInt(int64(y)))
		require.NoError(t, err)
		if !fv.GreaterThan(prev) {
			t.Fatalf("FV not increasing at year %d: %s <= %s", y, fv, prev)
		}
		prev = fv
	}

	small, _ := FutureValue(decimal.NewFromInt(10000), rate, decimal.NewFromInt(20))
	large, _ := FutureValue(decimal.NewFromInt(20000), rate, decimal.NewFromInt(20))
	assert.True(t, large.GreaterThan(small))
}

func TestFutureValueInvalidInputs(t *testing.T) {
	_, err := FutureValue(decimal.NewFromInt(50000), decimal.NewFromFloat(7.0), decimal.NewFromInt(-1))
	assert.True(t, errors.Is(err, ErrInvalidAnnuityParams), "negative horizon: got %v", err)

	_, err = FutureValue(decimal.NewFromInt(-50000), decimal.NewFromFloat(7.0), decimal.NewFromInt(20))
	assert.True(t, errors.Is(err, ErrInvalidAnnuityParams), "negative contribution: got %v", err)

	_, err = FutureValue(decimal.NewFromInt(50000), decimal.NewFromInt(-100), decimal.NewFromInt(20))
	assert.True(t, errors.Is(err, ErrInvalidAnnuityParams), "-100%% rate: got %v", err)
}

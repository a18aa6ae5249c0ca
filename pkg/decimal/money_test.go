package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("41822.37")
	assert.NoError(t, err)
	assert.Equal(t, "41822.37", m.String())

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestAnnualMonthlyRoundTrip(t *testing.T) {
	annual := NewMoneyFromInt(50000)
	monthly := annual.Monthly()
	assert.True(t, monthly.Annual().Equal(annual),
		"Annual(Monthly(x)) should return x, got %s", monthly.Annual())
}

func TestArithmetic(t *testing.T) {
	emi := NewMoney(41822.37)
	interest := NewMoney(33333.33)

	principal := emi.Sub(interest)
	assert.Equal(t, "8489.04", principal.String())
	assert.True(t, principal.Add(interest).Equal(emi))
}

func TestComparisons(t *testing.T) {
	a := NewMoneyFromInt(100)
	b := NewMoneyFromInt(200)

	assert.True(t, a.LessThan(b))
	assert.True(t, b.GreaterThan(a))
	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(a, b).Equal(b))
	assert.True(t, Zero().IsZero())
	assert.True(t, a.Sub(b).IsNegative())
}

func TestRound(t *testing.T) {
	m := NewMoney(1234.5678)
	assert.Equal(t, "1234.57", m.Round().String())
}

func TestFormat(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.NewFromFloat(5037280.49))
	assert.Equal(t, "₹5037280.49", m.Format())
	assert.Equal(t, "₹5037280", m.FormatWhole())
}

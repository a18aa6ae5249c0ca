package output

import (
	moneydec "github.com/loanlens/prepay-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return moneydec.NewMoneyFromDecimal(amount).Format()
}

// FormatCurrencyWhole formats a decimal as whole currency units, the usual
// display precision for loan figures.
func FormatCurrencyWhole(amount decimal.Decimal) string {
	return moneydec.NewMoneyFromDecimal(amount).FormatWhole()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatYears formats a fractional year count with 2 decimals.
func FormatYears(years decimal.Decimal) string { return years.StringFixed(2) + " years" }

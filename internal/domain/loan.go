package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanTerms describes a fixed-rate amortizing loan. A value is immutable per
// engine run; any input change produces a fresh LoanTerms.
type LoanTerms struct {
	Principal          decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRatePercent  decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	TenureYears        int             `yaml:"tenure_years" json:"tenure_years"`
	ExtraAnnualPayment decimal.Decimal `yaml:"extra_annual_payment,omitempty" json:"extra_annual_payment"`

	// StartDate, when set, stamps each schedule row with its payment due
	// date. The zero value leaves rows undated.
	StartDate time.Time `yaml:"start_date,omitempty" json:"start_date,omitempty"`
}

// ScheduledMonths returns the scheduled number of monthly payments.
func (lt LoanTerms) ScheduledMonths() int {
	return lt.TenureYears * 12
}

// MonthlyRate converts the annual percentage rate to a monthly decimal rate.
func (lt LoanTerms) MonthlyRate() decimal.Decimal {
	return lt.AnnualRatePercent.Div(decimal.NewFromInt(12)).Div(decimal.NewFromInt(100))
}

// WithExtra returns a copy of the terms with a different extra annual payment.
func (lt LoanTerms) WithExtra(extra decimal.Decimal) LoanTerms {
	lt.ExtraAnnualPayment = extra
	return lt
}

// AmortizationRow is one month of an amortization schedule. Principal and
// Interest sum to the effective installment for the month; Balance is the
// remaining principal after the payment.
type AmortizationRow struct {
	Month     int             `json:"month"`
	Date      time.Time       `json:"date,omitempty"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`

	// Running sums, kept on the row so chart output needs no second pass.
	CumulativePrincipal decimal.Decimal `json:"cumulative_principal"`
	CumulativeInterest  decimal.Decimal `json:"cumulative_interest"`
}

// AmortizationResult is the complete schedule for one engine run.
type AmortizationResult struct {
	Rows          []AmortizationRow `json:"rows"`
	EMI           decimal.Decimal   `json:"emi"`
	TotalInterest decimal.Decimal   `json:"total_interest"`
	TotalMonths   int               `json:"total_months"`
}

// FinalRow returns the terminal row of the schedule.
func (ar *AmortizationResult) FinalRow() AmortizationRow {
	if len(ar.Rows) == 0 {
		return AmortizationRow{}
	}
	return ar.Rows[len(ar.Rows)-1]
}

// TotalPrincipal returns the sum of principal components across the schedule.
func (ar *AmortizationResult) TotalPrincipal() decimal.Decimal {
	return ar.FinalRow().CumulativePrincipal
}

// TotalPaid returns principal plus interest across the schedule.
func (ar *AmortizationResult) TotalPaid() decimal.Decimal {
	return ar.TotalPrincipal().Add(ar.TotalInterest)
}

// PayoffYears returns the payoff time in fractional years.
func (ar *AmortizationResult) PayoffYears() decimal.Decimal {
	return decimal.NewFromInt(int64(ar.TotalMonths)).Div(decimal.NewFromInt(12))
}

// Scenario is one prepay-vs-invest strategy evaluated against the shared
// loan: an annual amount either paid into principal or invested at the
// given return.
type Scenario struct {
	Name                    string          `yaml:"name" json:"name"`
	ExtraAnnualPayment      decimal.Decimal `yaml:"extra_annual_payment" json:"extra_annual_payment"`
	AnnualReturnPercent     decimal.Decimal `yaml:"annual_return_percent" json:"annual_return_percent"`
	CompareShortenedHorizon bool            `yaml:"compare_shortened_horizon,omitempty" json:"compare_shortened_horizon,omitempty"`
}

// Configuration is the complete input document for a run.
type Configuration struct {
	Loan      LoanTerms  `yaml:"loan" json:"loan"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// GenerateAssumptions returns the modeling assumptions baked into the
// calculation, for display alongside results.
func (c *Configuration) GenerateAssumptions() []string {
	assumptions := []string{
		"Fixed interest rate over the full tenure",
		"Extra payments applied to principal at each 12th month",
		"Investment contributions made at period end (ordinary annuity), compounded annually",
		"Investment horizon defaults to the baseline loan payoff time",
		"No tax treatment on either loan interest or investment returns",
	}
	if !c.Loan.StartDate.IsZero() {
		assumptions = append(assumptions,
			"First payment due one month after "+c.Loan.StartDate.Format("2006-01-02"))
	}
	return assumptions
}

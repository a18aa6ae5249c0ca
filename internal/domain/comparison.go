package domain

import (
	"github.com/shopspring/decimal"
)

// Verdict classifies the sign of a net benefit. The comparison is exact:
// a net benefit of precisely zero maps to VerdictEqual.
type Verdict string

const (
	VerdictInvestingWins Verdict = "investing_wins"
	VerdictPrepayWins    Verdict = "prepay_wins"
	VerdictEqual         Verdict = "equal"
)

// Text returns the display sentence for the verdict.
func (v Verdict) Text() string {
	switch v {
	case VerdictInvestingWins:
		return "Investing the annual amount yields more than the interest saved by prepaying."
	case VerdictPrepayWins:
		return "Paying extra into principal saves more interest than investing would earn."
	case VerdictEqual:
		return "Both options come out equal."
	default:
		return string(v)
	}
}

// ClassifyNetBenefit maps a net benefit amount to its verdict.
func ClassifyNetBenefit(netBenefit decimal.Decimal) Verdict {
	switch {
	case netBenefit.IsPositive():
		return VerdictInvestingWins
	case netBenefit.IsNegative():
		return VerdictPrepayWins
	default:
		return VerdictEqual
	}
}

// InvestmentOutcome is the result of one annuity valuation over a horizon,
// compared against the interest saved by prepaying.
type InvestmentOutcome struct {
	HorizonYears        decimal.Decimal `json:"horizon_years"`
	AnnualContribution  decimal.Decimal `json:"annual_contribution"`
	AnnualReturnPercent decimal.Decimal `json:"annual_return_percent"`
	FutureValue         decimal.Decimal `json:"future_value"`
	TotalInvested       decimal.Decimal `json:"total_invested"`
	ReturnsEarned       decimal.Decimal `json:"returns_earned"`
	NetBenefit          decimal.Decimal `json:"net_benefit"`
	Verdict             Verdict         `json:"verdict"`
}

// ComparisonMetrics are the derived figures for one scenario. All fields are
// pure functions of the two amortization results and the annuity valuation.
type ComparisonMetrics struct {
	InterestBase  decimal.Decimal `json:"interest_base"`
	InterestExtra decimal.Decimal `json:"interest_extra"`
	InterestSaved decimal.Decimal `json:"interest_saved"`
	MonthsBase    int             `json:"months_base"`
	MonthsExtra   int             `json:"months_extra"`
	YearsSaved    decimal.Decimal `json:"years_saved"`

	// Investment uses the baseline payoff horizon. ShortenedInvestment is
	// populated only when the scenario opts into the secondary framing
	// (invest only while the shortened loan would still be running).
	Investment          InvestmentOutcome  `json:"investment"`
	ShortenedInvestment *InvestmentOutcome `json:"shortened_investment,omitempty"`
}

// ScenarioSummary bundles one scenario's schedules and derived metrics.
type ScenarioSummary struct {
	Name      string              `json:"name"`
	Scenario  Scenario            `json:"scenario"`
	Baseline  *AmortizationResult `json:"baseline"`
	WithExtra *AmortizationResult `json:"with_extra"`
	Metrics   ComparisonMetrics   `json:"metrics"`
}

// ScenarioComparison is the full output document for a run.
type ScenarioComparison struct {
	Loan        LoanTerms         `json:"loan"`
	Scenarios   []ScenarioSummary `json:"scenarios"`
	Assumptions []string          `json:"assumptions"`
}

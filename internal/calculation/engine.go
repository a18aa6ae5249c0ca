package calculation

import (
	"context"
	"fmt"

	"github.com/loanlens/prepay-calculator/internal/domain"
	moneydec "github.com/loanlens/prepay-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ComparisonEngine orchestrates the prepay-vs-invest calculations: two
// amortization runs per scenario plus one or two annuity valuations.
type ComparisonEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewComparisonEngine creates a new comparison engine
func NewComparisonEngine() *ComparisonEngine {
	return &ComparisonEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the comparison engine. If nil is provided, a no-op logger is used.
func (ce *ComparisonEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario evaluates one strategy scenario against the shared loan terms:
// a baseline schedule, a schedule with the extra annual payment, and the
// derived comparison metrics.
func (ce *ComparisonEngine) RunScenario(ctx context.Context, loan domain.LoanTerms, scenario domain.Scenario) (*domain.ScenarioSummary, error) {
	if scenario.ExtraAnnualPayment.IsNegative() {
		return nil, fmt.Errorf("%w: extra annual payment cannot be negative, got %s",
			ErrInvalidLoanTerms, scenario.ExtraAnnualPayment)
	}

	baseline, err := ComputeSchedule(loan.WithExtra(decimal.Zero))
	if err != nil {
		return nil, fmt.Errorf("baseline schedule failed: %w", err)
	}
	withExtra, err := ComputeSchedule(loan.WithExtra(scenario.ExtraAnnualPayment))
	if err != nil {
		return nil, fmt.Errorf("extra-payment schedule failed: %w", err)
	}

	metrics, err := ce.deriveMetrics(baseline, withExtra, scenario)
	if err != nil {
		return nil, err
	}

	if ce.Debug {
		ce.logBreakdown(scenario, baseline, metrics)
	}

	return &domain.ScenarioSummary{
		Name:      scenario.Name,
		Scenario:  scenario,
		Baseline:  baseline,
		WithExtra: withExtra,
		Metrics:   metrics,
	}, nil
}

// deriveMetrics combines the two schedules and the annuity valuation into
// comparison figures. Interest saved is floored at zero.
func (ce *ComparisonEngine) deriveMetrics(baseline, withExtra *domain.AmortizationResult, scenario domain.Scenario) (domain.ComparisonMetrics, error) {
	interestSaved := moneydec.Max(
		moneydec.Zero(),
		moneydec.NewMoneyFromDecimal(baseline.TotalInterest.Sub(withExtra.TotalInterest)),
	).Decimal

	yearsSaved := decimal.NewFromInt(int64(baseline.TotalMonths - withExtra.TotalMonths)).
		Div(decimal.NewFromInt(12))

	// Default framing: invest the annual amount for as long as the original
	// loan would have run.
	investment, err := ce.investmentOutcome(scenario, baseline.PayoffYears(), interestSaved)
	if err != nil {
		return domain.ComparisonMetrics{}, err
	}

	metrics := domain.ComparisonMetrics{
		InterestBase:  baseline.TotalInterest,
		InterestExtra: withExtra.TotalInterest,
		InterestSaved: interestSaved,
		MonthsBase:    baseline.TotalMonths,
		MonthsExtra:   withExtra.TotalMonths,
		YearsSaved:    yearsSaved,
		Investment:    investment,
	}

	if scenario.CompareShortenedHorizon {
		// Alternate framing: invest only while the shortened loan would
		// otherwise still be running.
		shortened, err := ce.investmentOutcome(scenario, withExtra.PayoffYears(), interestSaved)
		if err != nil {
			return domain.ComparisonMetrics{}, err
		}
		metrics.ShortenedInvestment = &shortened
	}

	return metrics, nil
}

// investmentOutcome values the annuity over one horizon and classifies the
// net benefit against the interest saved.
func (ce *ComparisonEngine) investmentOutcome(scenario domain.Scenario, horizonYears, interestSaved decimal.Decimal) (domain.InvestmentOutcome, error) {
	fv, err := FutureValue(scenario.ExtraAnnualPayment, scenario.AnnualReturnPercent, horizonYears)
	if err != nil {
		return domain.InvestmentOutcome{}, fmt.Errorf("annuity valuation failed: %w", err)
	}

	totalInvested := scenario.ExtraAnnualPayment.Mul(horizonYears)
	returnsEarned := fv.Sub(totalInvested)
	netBenefit := returnsEarned.Sub(interestSaved)

	return domain.InvestmentOutcome{
		HorizonYears:        horizonYears,
		AnnualContribution:  scenario.ExtraAnnualPayment,
		AnnualReturnPercent: scenario.AnnualReturnPercent,
		FutureValue:         fv,
		TotalInvested:       totalInvested,
		ReturnsEarned:       returnsEarned,
		NetBenefit:          netBenefit,
		Verdict:             domain.ClassifyNetBenefit(netBenefit),
	}, nil
}

// RunScenarios runs all configured scenarios and returns a comparison
func (ce *ComparisonEngine) RunScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	summaries := make([]domain.ScenarioSummary, len(config.Scenarios))
	ctx := context.Background()

	for i, scenario := range config.Scenarios {
		summary, err := ce.RunScenario(ctx, config.Loan, scenario)
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed for %q: %w", scenario.Name, err)
		}
		summaries[i] = *summary
	}

	return &domain.ScenarioComparison{
		Loan:        config.Loan,
		Scenarios:   summaries,
		Assumptions: config.GenerateAssumptions(),
	}, nil
}

func (ce *ComparisonEngine) logBreakdown(scenario domain.Scenario, baseline *domain.AmortizationResult, metrics domain.ComparisonMetrics) {
	ce.Logger.Debugf("SCENARIO BREAKDOWN: %s", scenario.Name)
	ce.Logger.Debugf("=========================================")
	ce.Logger.Debugf("EMI:                   ₹%s", baseline.EMI.StringFixed(2))
	ce.Logger.Debugf("Interest (normal):     ₹%s over %d months", metrics.InterestBase.StringFixed(2), metrics.MonthsBase)
	ce.Logger.Debugf("Interest (with extra): ₹%s over %d months", metrics.InterestExtra.StringFixed(2), metrics.MonthsExtra)
	ce.Logger.Debugf("Interest saved:        ₹%s", metrics.InterestSaved.StringFixed(2))
	ce.Logger.Debugf("Tenure saved:          %s years", metrics.YearsSaved.StringFixed(2))
	ce.Logger.Debugf("")
	ce.Logger.Debugf("INVESTMENT (horizon %s years):", metrics.Investment.HorizonYears.StringFixed(2))
	ce.Logger.Debugf("  Future value:        ₹%s", metrics.Investment.FutureValue.StringFixed(2))
	ce.Logger.Debugf("  Total invested:      ₹%s", metrics.Investment.TotalInvested.StringFixed(2))
	ce.Logger.Debugf("  Returns earned:      ₹%s", metrics.Investment.ReturnsEarned.StringFixed(2))
	ce.Logger.Debugf("  Net benefit:         ₹%s (%s)", metrics.Investment.NetBenefit.StringFixed(2), metrics.Investment.Verdict)
	if metrics.ShortenedInvestment != nil {
		ce.Logger.Debugf("  Shortened horizon %s years: FV ₹%s, net ₹%s (%s)",
			metrics.ShortenedInvestment.HorizonYears.StringFixed(2),
			metrics.ShortenedInvestment.FutureValue.StringFixed(2),
			metrics.ShortenedInvestment.NetBenefit.StringFixed(2),
			metrics.ShortenedInvestment.Verdict)
	}
	ce.Logger.Debugf("")
}

package output

import (
	"sort"

	"github.com/loanlens/prepay-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName  string
	NetBenefit    decimal.Decimal
	Verdict       domain.Verdict
	InterestSaved decimal.Decimal
	ReturnsEarned decimal.Decimal
}

// AnalyzeScenarios determines the scenario with the highest net benefit on
// the default (baseline-horizon) framing. Extracted from embedded console
// logic for testability.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	type ranked struct {
		name    string
		outcome domain.InvestmentOutcome
		saved   decimal.Decimal
	}
	var ranks []ranked
	for _, sc := range results.Scenarios {
		ranks = append(ranks, ranked{sc.Name, sc.Metrics.Investment, sc.Metrics.InterestSaved})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i].outcome.NetBenefit.GreaterThan(ranks[j].outcome.NetBenefit)
	})
	best := ranks[0]
	return Recommendation{
		ScenarioName:  best.name,
		NetBenefit:    best.outcome.NetBenefit,
		Verdict:       best.outcome.Verdict,
		InterestSaved: best.saved,
		ReturnsEarned: best.outcome.ReturnsEarned,
	}
}

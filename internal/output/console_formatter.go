package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/loanlens/prepay-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PREPAY VS INVEST SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Loan: %s at %s for %d years\n",
		FormatCurrencyWhole(results.Loan.Principal),
		FormatPercentage(results.Loan.AnnualRatePercent),
		results.Loan.TenureYears,
	)
	fmt.Fprintln(&buf)

	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		m := sc.Metrics
		fmt.Fprintf(&buf, "%s: InterestSaved=%s TenureSaved=%s Returns=%s Net=%s\n",
			sc.Name,
			FormatCurrencyWhole(m.InterestSaved),
			FormatYears(m.YearsSaved),
			FormatCurrencyWhole(m.Investment.ReturnsEarned),
			FormatCurrencyWhole(m.Investment.NetBenefit),
		)
		fmt.Fprintf(&buf, "  Verdict: %s\n", m.Investment.Verdict.Text())
		if m.ShortenedInvestment != nil {
			fmt.Fprintf(&buf, "  Shortened horizon (%s): Net=%s (%s)\n",
				FormatYears(m.ShortenedInvestment.HorizonYears),
				FormatCurrencyWhole(m.ShortenedInvestment.NetBenefit),
				m.ShortenedInvestment.Verdict,
			)
		}
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best net benefit: %s (%s)\n", rec.ScenarioName, FormatCurrencyWhole(rec.NetBenefit))
	}
	return buf.Bytes(), nil
}

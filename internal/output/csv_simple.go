package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/loanlens/prepay-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "EMI", "InterestBase", "InterestExtra", "InterestSaved", "MonthsBase", "MonthsExtra", "YearsSaved", "HorizonYears", "FutureValue", "TotalInvested", "ReturnsEarned", "NetBenefit", "Verdict", "ShortenedHorizonYears", "ShortenedNetBenefit", "ShortenedVerdict"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		m := sc.Metrics
		row := []string{
			sc.Name,
			sc.Baseline.EMI.StringFixed(2),
			m.InterestBase.StringFixed(2),
			m.InterestExtra.StringFixed(2),
			m.InterestSaved.StringFixed(2),
			intToString(m.MonthsBase),
			intToString(m.MonthsExtra),
			m.YearsSaved.StringFixed(2),
			m.Investment.HorizonYears.StringFixed(2),
			m.Investment.FutureValue.StringFixed(2),
			m.Investment.TotalInvested.StringFixed(2),
			m.Investment.ReturnsEarned.StringFixed(2),
			m.Investment.NetBenefit.StringFixed(2),
			string(m.Investment.Verdict),
			"", "", "",
		}
		if m.ShortenedInvestment != nil {
			row[len(row)-3] = m.ShortenedInvestment.HorizonYears.StringFixed(2)
			row[len(row)-2] = m.ShortenedInvestment.NetBenefit.StringFixed(2)
			row[len(row)-1] = string(m.ShortenedInvestment.Verdict)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/loanlens/prepay-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with client-side charts
// fed from embedded JSON.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrencyWhole,
	"pct":  FormatPercentage,
	"yrs":  FormatYears,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the minimal row shape shipped to the chart script.
type chartSeries struct {
	Months         []int     `json:"months"`
	InterestBase   []float64 `json:"interest_base"`
	InterestExtra  []float64 `json:"interest_extra"`
	PrincipalBase  []float64 `json:"principal_base"`
	PrincipalExtra []float64 `json:"principal_extra"`
}

func buildChartSeries(sc *domain.ScenarioSummary) chartSeries {
	base := sc.Baseline.Rows
	extra := sc.WithExtra.Rows

	series := chartSeries{
		Months:         make([]int, len(base)),
		InterestBase:   make([]float64, len(base)),
		PrincipalBase:  make([]float64, len(base)),
		InterestExtra:  make([]float64, 0, len(extra)),
		PrincipalExtra: make([]float64, 0, len(extra)),
	}
	for i, row := range base {
		series.Months[i] = row.Month
		series.InterestBase[i] = row.CumulativeInterest.InexactFloat64()
		series.PrincipalBase[i] = row.CumulativePrincipal.InexactFloat64()
	}
	for _, row := range extra {
		series.InterestExtra = append(series.InterestExtra, row.CumulativeInterest.InexactFloat64())
		series.PrincipalExtra = append(series.PrincipalExtra, row.CumulativePrincipal.InexactFloat64())
	}
	return series
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	rec := AnalyzeScenarios(results)

	type scenarioView struct {
		*domain.ScenarioSummary
		Chart chartSeries
	}
	views := make([]scenarioView, len(results.Scenarios))
	for i := range results.Scenarios {
		sc := &results.Scenarios[i]
		views[i] = scenarioView{sc, buildChartSeries(sc)}
	}

	data := struct {
		Loan           domain.LoanTerms
		Scenarios      []scenarioView
		Assumptions    []string
		Recommendation Recommendation
	}{results.Loan, views, results.Assumptions, rec}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/loanlens/prepay-calculator/internal/domain"
	moneydec "github.com/loanlens/prepay-calculator/pkg/decimal"
)

// ConsoleVerboseFormatter renders the full text report: loan summary,
// per-scenario comparison metrics, verdicts, and an amortization table
// excerpt for the extra-payment run.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

// scheduleExcerptRows bounds the table excerpt on each end.
const scheduleExcerptRows = 6

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	writeHeader(&buf, "HOME LOAN IMPACT: PAY EXTRA VS INVEST")
	fmt.Fprintf(&buf, "Principal:        %s\n", FormatCurrencyWhole(results.Loan.Principal))
	fmt.Fprintf(&buf, "Interest Rate:    %s\n", FormatPercentage(results.Loan.AnnualRatePercent))
	fmt.Fprintf(&buf, "Tenure:           %d years\n", results.Loan.TenureYears)
	if !results.Loan.StartDate.IsZero() {
		fmt.Fprintf(&buf, "Start Date:       %s\n", results.Loan.StartDate.Format("2006-01-02"))
	}
	fmt.Fprintln(&buf)

	for _, sc := range results.Scenarios {
		c.writeScenario(&buf, &sc)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		writeHeader(&buf, "RECOMMENDATION")
		fmt.Fprintf(&buf, "Best net benefit: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "  Net benefit:    %s\n", FormatCurrencyWhole(rec.NetBenefit))
		fmt.Fprintf(&buf, "  %s\n", rec.Verdict.Text())
		fmt.Fprintln(&buf)
	}

	if len(results.Assumptions) > 0 {
		writeHeader(&buf, "ASSUMPTIONS")
		for _, a := range results.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}

	return buf.Bytes(), nil
}

func (c ConsoleVerboseFormatter) writeScenario(buf *bytes.Buffer, sc *domain.ScenarioSummary) {
	m := sc.Metrics

	writeHeader(buf, "SCENARIO: "+strings.ToUpper(sc.Name))

	fmt.Fprintln(buf, "Results Summary")
	fmt.Fprintf(buf, "  EMI:                    %s/month\n", FormatCurrencyWhole(sc.Baseline.EMI))
	fmt.Fprintf(buf, "  Interest (Normal):      %s over %d months\n", FormatCurrencyWhole(m.InterestBase), m.MonthsBase)
	fmt.Fprintf(buf, "  Interest (With Extra):  %s over %d months\n", FormatCurrencyWhole(m.InterestExtra), m.MonthsExtra)
	fmt.Fprintf(buf, "  Interest Saved:         %s\n", FormatCurrencyWhole(m.InterestSaved))
	fmt.Fprintf(buf, "  Tenure Saved:           %s\n", FormatYears(m.YearsSaved))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "Investment vs Extra Payment")
	inv := m.Investment
	fmt.Fprintf(buf, "  Annual Invest Amount:   %s (%s/month)\n",
		FormatCurrencyWhole(inv.AnnualContribution),
		moneydec.NewMoneyFromDecimal(inv.AnnualContribution).Monthly().FormatWhole())
	fmt.Fprintf(buf, "  Portfolio Return:       %s\n", FormatPercentage(inv.AnnualReturnPercent))
	fmt.Fprintf(buf, "  Horizon (Original):     %s\n", FormatYears(inv.HorizonYears))
	fmt.Fprintf(buf, "  Future Value:           %s\n", FormatCurrencyWhole(inv.FutureValue))
	fmt.Fprintf(buf, "  Total Invested:         %s\n", FormatCurrencyWhole(inv.TotalInvested))
	fmt.Fprintf(buf, "  Returns Earned:         %s\n", FormatCurrencyWhole(inv.ReturnsEarned))
	fmt.Fprintf(buf, "  Net Benefit:            %s\n", FormatCurrencyWhole(inv.NetBenefit))
	fmt.Fprintf(buf, "  -> %s\n", inv.Verdict.Text())
	fmt.Fprintln(buf)

	if m.ShortenedInvestment != nil {
		short := m.ShortenedInvestment
		fmt.Fprintln(buf, "Investing Only For The Shortened Loan Period")
		fmt.Fprintf(buf, "  Horizon (Shortened):    %s (%d months)\n", FormatYears(short.HorizonYears), m.MonthsExtra)
		fmt.Fprintf(buf, "  Future Value:           %s\n", FormatCurrencyWhole(short.FutureValue))
		fmt.Fprintf(buf, "  Total Invested:         %s\n", FormatCurrencyWhole(short.TotalInvested))
		fmt.Fprintf(buf, "  Returns Earned:         %s\n", FormatCurrencyWhole(short.ReturnsEarned))
		fmt.Fprintf(buf, "  Net Benefit:            %s\n", FormatCurrencyWhole(short.NetBenefit))
		fmt.Fprintf(buf, "  -> %s\n", short.Verdict.Text())
		fmt.Fprintln(buf)
	}

	fmt.Fprintln(buf, "Amortization Table (With Extra Payments)")
	writeScheduleExcerpt(buf, sc.WithExtra)
	fmt.Fprintln(buf)
}

func writeScheduleExcerpt(buf *bytes.Buffer, result *domain.AmortizationResult) {
	fmt.Fprintf(buf, "  %6s  %14s  %14s  %14s  %16s\n", "Month", "Payment", "Principal", "Interest", "Balance")

	rows := result.Rows
	if len(rows) <= 2*scheduleExcerptRows {
		for _, row := range rows {
			writeScheduleRow(buf, row)
		}
		return
	}
	for _, row := range rows[:scheduleExcerptRows] {
		writeScheduleRow(buf, row)
	}
	fmt.Fprintf(buf, "  %6s\n", "...")
	for _, row := range rows[len(rows)-scheduleExcerptRows:] {
		writeScheduleRow(buf, row)
	}
}

func writeScheduleRow(buf *bytes.Buffer, row domain.AmortizationRow) {
	fmt.Fprintf(buf, "  %6d  %14s  %14s  %14s  %16s\n",
		row.Month,
		FormatCurrencyWhole(row.Payment),
		FormatCurrencyWhole(row.Principal),
		FormatCurrencyWhole(row.Interest),
		FormatCurrencyWhole(row.Balance),
	)
}

func writeHeader(buf *bytes.Buffer, title string) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
}

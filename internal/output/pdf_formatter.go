package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/loanlens/prepay-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// PDFFormatter renders a printable summary report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

// pdfCurrency formats an amount for PDF output. The standard PDF fonts are
// Latin-1 and cannot encode the rupee sign, so it degrades to "Rs".
func pdfCurrency(amount decimal.Decimal) string {
	return strings.ReplaceAll(FormatCurrencyWhole(amount), "₹", "Rs ")
}

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Home Loan Impact - Pay Extra vs Invest", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Home Loan Impact - Pay Extra vs Invest", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Loan: %s at %s for %d years",
		pdfCurrency(results.Loan.Principal),
		FormatPercentage(results.Loan.AnnualRatePercent),
		results.Loan.TenureYears), "", 1, "L", false, 0, "")
	if !results.Loan.StartDate.IsZero() {
		pdf.CellFormat(0, 7, "Start date: "+results.Loan.StartDate.Format("2006-01-02"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for i := range results.Scenarios {
		p.writeScenario(pdf, &results.Scenarios[i])
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Recommendation", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Best net benefit: %s (%s)",
			rec.ScenarioName, pdfCurrency(rec.NetBenefit)), "", 1, "L", false, 0, "")
		pdf.MultiCell(0, 6, rec.Verdict.Text(), "", "L", false)
		pdf.Ln(2)
	}

	if len(results.Assumptions) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Assumptions", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, a := range results.Assumptions {
			pdf.MultiCell(0, 5, "- "+a, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p PDFFormatter) writeScenario(pdf *fpdf.Fpdf, sc *domain.ScenarioSummary) {
	m := sc.Metrics

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, sc.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	rows := [][2]string{
		{"EMI", pdfCurrency(sc.Baseline.EMI) + "/month"},
		{"Interest (normal)", fmt.Sprintf("%s over %d months", pdfCurrency(m.InterestBase), m.MonthsBase)},
		{"Interest (with extra)", fmt.Sprintf("%s over %d months", pdfCurrency(m.InterestExtra), m.MonthsExtra)},
		{"Interest saved", pdfCurrency(m.InterestSaved)},
		{"Tenure saved", FormatYears(m.YearsSaved)},
		{"Investment horizon", FormatYears(m.Investment.HorizonYears)},
		{"Future value", pdfCurrency(m.Investment.FutureValue)},
		{"Total invested", pdfCurrency(m.Investment.TotalInvested)},
		{"Returns earned", pdfCurrency(m.Investment.ReturnsEarned)},
		{"Net benefit", pdfCurrency(m.Investment.NetBenefit)},
	}
	if m.ShortenedInvestment != nil {
		rows = append(rows,
			[2]string{"Shortened horizon", FormatYears(m.ShortenedInvestment.HorizonYears)},
			[2]string{"Net benefit (shortened)", pdfCurrency(m.ShortenedInvestment.NetBenefit)},
		)
	}
	for _, row := range rows {
		pdf.CellFormat(60, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, m.Investment.Verdict.Text(), "", "L", false)
	pdf.Ln(3)
}

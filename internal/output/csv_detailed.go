package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/loanlens/prepay-calculator/internal/domain"
)

// ScheduleCSVExporter exports the complete month-by-month schedules, both
// the baseline and extra-payment runs, for every scenario.
type ScheduleCSVExporter struct{}

func (e ScheduleCSVExporter) Name() string { return "schedule-csv" }

func (e ScheduleCSVExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Run", "Month", "Date", "Payment", "Principal", "Interest", "Balance", "CumulativePrincipal", "CumulativeInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, sc := range results.Scenarios {
		if err := writeScheduleRows(w, sc.Name, "baseline", sc.Baseline); err != nil {
			return nil, err
		}
		if err := writeScheduleRows(w, sc.Name, "with_extra", sc.WithExtra); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeScheduleRows(w *csv.Writer, scenario, run string, result *domain.AmortizationResult) error {
	for _, row := range result.Rows {
		date := ""
		if !row.Date.IsZero() {
			date = row.Date.Format("2006-01-02")
		}
		record := []string{
			scenario,
			run,
			strconv.Itoa(row.Month),
			date,
			row.Payment.StringFixed(2),
			row.Principal.StringFixed(2),
			row.Interest.StringFixed(2),
			row.Balance.StringFixed(2),
			row.CumulativePrincipal.StringFixed(2),
			row.CumulativeInterest.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func intToString(i int) string { return strconv.Itoa(i) }

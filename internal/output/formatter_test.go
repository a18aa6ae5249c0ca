package output

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/loanlens/prepay-calculator/internal/calculation"
	"github.com/loanlens/prepay-calculator/internal/config"
	"github.com/loanlens/prepay-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildComparison runs the example configuration through the engine so the
// formatters see realistic data.
func buildComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	cfg := config.NewInputParser().CreateExampleConfiguration()
	engine := calculation.NewComparisonEngine()
	results, err := engine.RunScenarios(cfg)
	require.NoError(t, err)
	return results
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "console-lite", "csv", "schedule-csv", "json", "html", "pdf"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q not registered", name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("yaml"))
}

func TestGetFormatterByAlias(t *testing.T) {
	tests := map[string]string{
		"verbose":     "console",
		"lite":        "console-lite",
		"table":       "schedule-csv",
		"json-pretty": "json",
		"report":      "html",
	}
	for alias, canonical := range tests {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, "alias %q did not resolve", alias)
		assert.Equal(t, canonical, f.Name())
	}
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "console", NormalizeFormatName(" CONSOLE-VERBOSE "))
	assert.Equal(t, "json", NormalizeFormatName("json"))
	assert.Equal(t, "whatever", NormalizeFormatName("whatever"))
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "txt", FileExtension("console"))
	assert.Equal(t, "txt", FileExtension("console-lite"))
	assert.Equal(t, "csv", FileExtension("csv"))
	assert.Equal(t, "csv", FileExtension("schedule-csv"))
	assert.Equal(t, "json", FileExtension("json"))
	assert.Equal(t, "pdf", FileExtension("pdf"))
}

func TestConsoleFormatters(t *testing.T) {
	results := buildComparison(t)

	lite, err := ConsoleFormatter{}.Format(results)
	require.NoError(t, err)
	assert.Contains(t, string(lite), "PREPAY VS INVEST SUMMARY")
	assert.Contains(t, string(lite), "InterestSaved=")

	verbose, err := ConsoleVerboseFormatter{}.Format(results)
	require.NoError(t, err)
	text := string(verbose)
	assert.Contains(t, text, "HOME LOAN IMPACT")
	assert.Contains(t, text, "Interest Saved:")
	assert.Contains(t, text, "Amortization Table (With Extra Payments)")
	assert.Contains(t, text, "ASSUMPTIONS")
	// The second example scenario opts into the shortened framing.
	assert.Contains(t, text, "Shortened Loan Period")
}

func TestCSVSummarizer(t *testing.T) {
	results := buildComparison(t)
	data, err := CSVSummarizer{}.Format(results)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1+len(results.Scenarios))
	assert.Contains(t, lines[0], "InterestSaved")
	assert.Contains(t, lines[0], "ShortenedNetBenefit")
}

func TestScheduleCSVExporter(t *testing.T) {
	results := buildComparison(t)
	data, err := ScheduleCSVExporter{}.Format(results)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// header + (baseline + with_extra) rows per scenario
	expected := 1
	for _, sc := range results.Scenarios {
		expected += sc.Baseline.TotalMonths + sc.WithExtra.TotalMonths
	}
	assert.Len(t, lines, expected)
	assert.Contains(t, lines[1], "baseline")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	results := buildComparison(t)
	data, err := JSONFormatter{}.Format(results)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "loan")
	assert.Contains(t, decoded, "scenarios")
}

func TestHTMLFormatter(t *testing.T) {
	results := buildComparison(t)
	data, err := HTMLFormatter{}.Format(results)
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "<title>Home Loan Impact")
	assert.Contains(t, html, "Cumulative Interest")
	assert.Contains(t, html, "interest_base")
	for _, sc := range results.Scenarios {
		assert.Contains(t, html, sc.Name)
	}
}

func TestPDFFormatter(t *testing.T) {
	results := buildComparison(t)
	data, err := PDFFormatter{}.Format(results)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output should be a PDF document")
}

func TestWriteFormattedAndGenerateReport(t *testing.T) {
	results := buildComparison(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	name, err := WriteFormatted(ConsoleFormatter{}, results, "txt")
	require.NoError(t, err)
	assert.FileExists(t, name)

	require.NoError(t, GenerateReport(results, "csv"))
	require.NoError(t, GenerateReport(results, "verbose"))

	err = GenerateReport(results, "nonsense")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

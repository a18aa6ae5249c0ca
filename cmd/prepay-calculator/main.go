package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/loanlens/prepay-calculator/internal/calculation"
	"github.com/loanlens/prepay-calculator/internal/config"
	"github.com/loanlens/prepay-calculator/internal/domain"
	"github.com/loanlens/prepay-calculator/internal/logging"
	"github.com/loanlens/prepay-calculator/internal/output"
	"github.com/spf13/cobra"
)

var (
	version = "0.2.0"

	inputFile    string
	outputFormat string
	saveToFile   bool
	verbose      bool
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:   "prepay-calculator",
	Short: "Home loan prepay-vs-invest comparison calculator",
	Long: `prepay-calculator compares two uses for surplus cash against a home loan:
paying an extra amount into the loan once a year, or investing the same
amount at an assumed annual return. It amortizes both loan paths, values
the investment stream as an annuity, and reports which strategy comes out
ahead for each configured scenario.`,
	Version: version,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run the prepay-vs-invest comparison for all scenarios in a config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer logger.Sync()

		results, err := runScenarios(logger)
		if err != nil {
			return err
		}

		format := output.NormalizeFormatName(outputFormat)
		if saveToFile {
			logger.Infof("Writing %s report", format)
			if err := output.GenerateReport(results, format); err != nil {
				return err
			}
			return nil
		}

		// Console formats print to stdout when not saving.
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			return fmt.Errorf("%w: %q. Try one of: %s", output.ErrUnsupportedFormat, outputFormat,
				strings.Join(output.AvailableFormatterNames(), ", "))
		}
		data, err := formatter.Format(results)
		if err != nil {
			return err
		}
		if format == "pdf" {
			// Binary output is unreadable on a terminal, write a file instead.
			name, err := output.WriteFormatted(formatter, results, output.FileExtension(format))
			if err != nil {
				return err
			}
			fmt.Printf("PDF report written to %s\n", name)
			return nil
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the full month-by-month amortization schedules as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer logger.Sync()

		results, err := runScenarios(logger)
		if err != nil {
			return err
		}

		data, err := output.ScheduleCSVExporter{}.Format(results)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config [filename]",
	Short: "Write an example configuration file to get started",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "example_loan_config.yaml"
		if len(args) > 0 {
			filename = args[0]
		}

		cfg := config.NewInputParser().CreateExampleConfiguration()
		if err := output.SaveConfiguration(cfg, filename); err != nil {
			return fmt.Errorf("saving example configuration: %w", err)
		}
		fmt.Printf("Example configuration written to %s\n", filename)
		fmt.Println("Edit the loan terms and scenarios, then run: prepay-calculator compare --input " + filename)
		return nil
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported output formats and their aliases",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Formats:", strings.Join(output.AvailableFormatterNames(), ", "))
		fmt.Println("Aliases:", strings.Join(output.AvailableFormatAliases(), ", "))
	},
}

func runScenarios(logger *logging.Logger) (*domain.ScenarioComparison, error) {
	logger.Infof("Loading configuration from %s", inputFile)
	cfg, err := config.NewInputParser().LoadFromFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	engine := calculation.NewComparisonEngine()
	engine.Debug = debug
	engine.SetLogger(logger)

	results, err := engine.RunScenarios(cfg)
	if err != nil {
		return nil, fmt.Errorf("running scenarios: %w", err)
	}
	logger.Infof("Evaluated %d scenario(s)", len(results.Scenarios))
	return results, nil
}

func init() {
	for _, cmd := range []*cobra.Command{compareCmd, scheduleCmd} {
		cmd.Flags().StringVarP(&inputFile, "input", "i", "loan_config.yaml", "Input configuration file (YAML)")
		cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
		cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Log detailed calculation breakdowns")
	}
	compareCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "Output format (see 'formats' command)")
	compareCmd.Flags().BoolVar(&saveToFile, "save", false, "Write the report to a timestamped file instead of stdout")

	rootCmd.AddCommand(compareCmd, scheduleCmd, exampleConfigCmd, formatsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/loanlens/prepay-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Sanity bounds on inputs. The engine itself only rejects nonsensical
// values; the parser additionally rejects implausible ones so a typo in a
// config file fails loudly instead of producing a 400-year schedule.
var (
	maxTenureYears   = 40
	maxRatePercent   = decimal.NewFromInt(50)
	maxReturnPercent = decimal.NewFromInt(100)
	minReturnPercent = decimal.NewFromInt(-100)
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateLoan(&config.Loan); err != nil {
		return fmt.Errorf("loan validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateLoan validates the shared loan terms
func (ip *InputParser) validateLoan(loan *domain.LoanTerms) error {
	if loan.Principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("principal must be positive")
	}
	if loan.AnnualRatePercent.LessThan(decimal.Zero) {
		return fmt.Errorf("annual interest rate cannot be negative")
	}
	if loan.AnnualRatePercent.GreaterThan(maxRatePercent) {
		return fmt.Errorf("annual interest rate must be at most %s%%", maxRatePercent)
	}
	if loan.TenureYears <= 0 || loan.TenureYears > maxTenureYears {
		return fmt.Errorf("tenure must be between 1 and %d years", maxTenureYears)
	}
	if loan.ExtraAnnualPayment.LessThan(decimal.Zero) {
		return fmt.Errorf("extra annual payment cannot be negative")
	}
	return nil
}

// validateScenario validates a single strategy scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.ExtraAnnualPayment.LessThan(decimal.Zero) {
		return fmt.Errorf("extra annual payment cannot be negative")
	}
	if scenario.AnnualReturnPercent.LessThanOrEqual(minReturnPercent) {
		return fmt.Errorf("annual return must be above %s%%", minReturnPercent)
	}
	if scenario.AnnualReturnPercent.GreaterThan(maxReturnPercent) {
		return fmt.Errorf("annual return must be at most %s%%", maxReturnPercent)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	startDate, _ := time.Parse("2006-01-02", "2026-01-01")

	return &domain.Configuration{
		Loan: domain.LoanTerms{
			Principal:         decimal.NewFromInt(5000000),
			AnnualRatePercent: decimal.NewFromFloat(8.0),
			TenureYears:       20,
			StartDate:         startDate,
		},
		Scenarios: []domain.Scenario{
			{
				Name:                "Prepay 50k vs 7% portfolio",
				ExtraAnnualPayment:  decimal.NewFromInt(50000),
				AnnualReturnPercent: decimal.NewFromFloat(7.0),
			},
			{
				Name:                    "Same strategy, shortened investment horizon",
				ExtraAnnualPayment:      decimal.NewFromInt(50000),
				AnnualReturnPercent:     decimal.NewFromFloat(7.0),
				CompareShortenedHorizon: true,
			},
		},
	}
}

package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/loanlens/prepay-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport resolves the format against the registered formatters and
// writes a timestamped report file.
func GenerateReport(results *domain.ScenarioComparison, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	_, err := WriteFormatted(f, results, FileExtension(f.Name()))
	return err
}

// SaveConfiguration writes a configuration back out as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

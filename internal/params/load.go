package params

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

// Load reads a parameter table from a JSON file. An empty path returns the
// built-in table.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parameter file: %w", err)
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode parameter file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("parameter file %s: %w", path, err)
	}
	return &t, nil
}

// Validate checks the structural requirements the engine relies on.
func (t *Table) Validate() error {
	var problems []string

	if len(t.Municipalities) == 0 {
		problems = append(problems, "no municipalities defined")
	}
	for name, m := range t.Municipalities {
		if m.TaxRatePct < 0 || m.TaxRatePct > 100 {
			problems = append(problems, fmt.Sprintf("municipality %s: tax_rate_pct %.2f out of range", name, m.TaxRatePct))
		}
	}
	if t.Commute.BandCeilingKm < t.Commute.FreeKm {
		problems = append(problems, "commute band_ceiling_km below free_km")
	}
	if t.Daycare.IncomeStep <= 0 {
		problems = append(problems, "daycare income_step must be positive")
	}
	for _, b := range t.ChildBenefit.Bands {
		if b.MinAge > b.MaxAge {
			problems = append(problems, fmt.Sprintf("child benefit band %d-%d is inverted", b.MinAge, b.MaxAge))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid parameter table: %s", strings.Join(problems, "; "))
	}
	return nil
}

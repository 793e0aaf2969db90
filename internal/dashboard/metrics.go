package dashboard

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

// DefaultIndicators are the yes/no columns summarized as percentages on
// the dashboard when present.
var DefaultIndicators = []string{"APAAvailable", "OECDorBEPS"}

// Indicator is the share of filtered rows whose value in a yes/no
// column contains "Yes". Present is false when the column does not
// exist in the table, which renders as "n/a" rather than zero.
type Indicator struct {
	Column     string
	Present    bool
	PercentYes float64
}

// Display renders the indicator the way the KPI cards show it.
func (in Indicator) Display() string {
	if !in.Present {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", in.PercentYes)
}

// Metrics are the headline numbers recomputed from every filtered view.
type Metrics struct {
	// TotalCountries counts distinct countries in the unfiltered table.
	TotalCountries int
	// FilteredRows counts rows in the filtered view.
	FilteredRows int
	// FilteredCountries counts distinct countries in the filtered view.
	FilteredCountries int
	Indicators        []Indicator
}

// ComputeMetrics derives Metrics from the unfiltered table and the
// current filtered view. Total functions: missing columns and empty
// views degrade to n/a or zero, never an error.
func ComputeMetrics(full, filtered *dataset.Table, indicators []string) Metrics {
	m := Metrics{
		TotalCountries:    len(full.DistinctValues("Country")),
		FilteredCountries: len(filtered.DistinctValues("Country")),
	}
	if filtered != nil {
		m.FilteredRows = len(filtered.Rows)
	}
	if indicators == nil {
		indicators = DefaultIndicators
	}
	for _, col := range indicators {
		in := Indicator{Column: col}
		if filtered.HasColumn(col) {
			in.Present = true
			if m.FilteredRows > 0 {
				yes := 0
				for _, r := range filtered.Rows {
					if strings.Contains(strings.ToLower(r[col]), "yes") {
						yes++
					}
				}
				in.PercentYes = float64(yes) * 100 / float64(m.FilteredRows)
			}
		}
		m.Indicators = append(m.Indicators, in)
	}
	return m
}

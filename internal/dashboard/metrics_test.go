package dashboard

import (
	"testing"

	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

func TestMetricsPercentageScenario(t *testing.T) {
	table := &dataset.Table{
		Columns: []string{"Country", "APAAvailable"},
		Rows: []dataset.Row{
			{"Country": "NL", "APAAvailable": "Yes"},
			{"Country": "DE", "APAAvailable": "No"},
			{"Country": "FR", "APAAvailable": "No"},
		},
	}
	filtered := Apply(table, Criteria{Countries: []string{"NL", "FR"}})
	if len(filtered.Rows) != 2 {
		t.Fatalf("expected 2 filtered rows, got %d", len(filtered.Rows))
	}

	m := ComputeMetrics(table, filtered, []string{"APAAvailable"})
	if m.TotalCountries != 3 {
		t.Fatalf("total countries should come from the unfiltered table, got %d", m.TotalCountries)
	}
	if m.FilteredRows != 2 || m.FilteredCountries != 2 {
		t.Fatalf("expected 2 filtered rows/countries, got %d/%d", m.FilteredRows, m.FilteredCountries)
	}
	in := m.Indicators[0]
	if !in.Present || in.PercentYes != 50 {
		t.Fatalf("expected 50%% yes, got present=%v pct=%v", in.Present, in.PercentYes)
	}
	if in.Display() != "50%" {
		t.Fatalf("expected display 50%%, got %q", in.Display())
	}
}

func TestMetricsIndicatorCaseInsensitiveContains(t *testing.T) {
	table := &dataset.Table{
		Columns: []string{"Country", "OECDorBEPS"},
		Rows: []dataset.Row{
			{"Country": "NL", "OECDorBEPS": "yes, since 2016"},
			{"Country": "DE", "OECDorBEPS": "YES"},
		},
	}
	m := ComputeMetrics(table, table, []string{"OECDorBEPS"})
	if m.Indicators[0].PercentYes != 100 {
		t.Fatalf("contains-yes matching must be case-insensitive, got %v", m.Indicators[0].PercentYes)
	}
}

func TestMetricsMissingIndicatorIsNotApplicable(t *testing.T) {
	table := &dataset.Table{
		Columns: []string{"Country"},
		Rows:    []dataset.Row{{"Country": "NL"}},
	}
	m := ComputeMetrics(table, table, []string{"APAAvailable"})
	in := m.Indicators[0]
	if in.Present {
		t.Fatal("absent indicator column must be reported as not applicable")
	}
	if in.Display() != "n/a" {
		t.Fatalf("expected n/a, got %q", in.Display())
	}
}

func TestMetricsEmptyFilteredView(t *testing.T) {
	table := &dataset.Table{
		Columns: []string{"Country", "APAAvailable"},
		Rows:    []dataset.Row{{"Country": "NL", "APAAvailable": "Yes"}},
	}
	empty := Apply(table, Criteria{})
	m := ComputeMetrics(table, empty, nil)
	if m.FilteredRows != 0 {
		t.Fatalf("expected 0 filtered rows, got %d", m.FilteredRows)
	}
	for _, in := range m.Indicators {
		if in.Present && in.PercentYes != 0 {
			t.Fatalf("empty view should yield 0%%, got %v", in.PercentYes)
		}
	}
}

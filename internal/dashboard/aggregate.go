package dashboard

import (
	"sort"
	"strings"

	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

// DefaultChartColumns are the designated columns whose value
// distributions back the dashboard charts.
var DefaultChartColumns = []string{"TPFilingRequirement", "MF_deadline"}

// DefaultChartTopN truncates chart aggregates to the most frequent
// values so axes stay readable.
const DefaultChartTopN = 10

// ValueCount is one (value, occurrences) pair of a distribution.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts is the value-count distribution of a single column over
// the filtered view. Counts is empty when the column is absent or the
// view has no rows; callers render that as "no data", never an error.
type ValueCounts struct {
	Column string
	Counts []ValueCount
}

// Empty reports whether there is anything to chart.
func (vc ValueCounts) Empty() bool { return len(vc.Counts) == 0 }

// CountValues computes the value-count distribution of a column,
// ordered by descending count (value ascending on ties) and truncated
// to topN entries when topN > 0. Blank cells are not counted.
func CountValues(t *dataset.Table, column string, topN int) ValueCounts {
	vc := ValueCounts{Column: column}
	if t == nil || !t.HasColumn(column) {
		return vc
	}
	counts := make(map[string]int)
	for _, r := range t.Rows {
		if v := r[column]; v != "" {
			counts[v]++
		}
	}
	vc.Counts = make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		vc.Counts = append(vc.Counts, ValueCount{Value: v, Count: n})
	}
	sort.Slice(vc.Counts, func(i, j int) bool {
		if vc.Counts[i].Count == vc.Counts[j].Count {
			return vc.Counts[i].Value < vc.Counts[j].Value
		}
		return vc.Counts[i].Count > vc.Counts[j].Count
	})
	if topN > 0 && len(vc.Counts) > topN {
		vc.Counts = vc.Counts[:topN]
	}
	return vc
}

// ChartData computes the distributions for each designated chart column
// over the filtered view.
func ChartData(filtered *dataset.Table, columns []string, topN int) []ValueCounts {
	if columns == nil {
		columns = DefaultChartColumns
	}
	if topN <= 0 {
		topN = DefaultChartTopN
	}
	out := make([]ValueCounts, 0, len(columns))
	for _, col := range columns {
		out = append(out, CountValues(filtered, col, topN))
	}
	return out
}

// DeadlineView pairs Country with every column whose name contains
// "deadline", over the filtered rows. Returns nil when no deadline
// columns exist or nothing is selected.
func DeadlineView(filtered *dataset.Table) *dataset.Table {
	if filtered.Empty() {
		return nil
	}
	cols := []string{"Country"}
	for _, c := range filtered.Columns {
		if c != "Country" && strings.Contains(strings.ToLower(c), "deadline") {
			cols = append(cols, c)
		}
	}
	if len(cols) == 1 {
		return nil
	}
	return &dataset.Table{Columns: cols, Rows: filtered.Rows}
}

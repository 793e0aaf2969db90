package dataset

import "sort"

// maxCategoricalValues bounds how many distinct values a column may have
// and still be offered as a categorical filter. High-cardinality
// free-text columns make useless multi-selects.
const maxCategoricalValues = 20

// ColumnProfile captures what was learned about a column at load time.
// Profiles are computed once per load and drive filter generation, so
// interactions never re-scan the table.
type ColumnProfile struct {
	Name     string
	Distinct int
	// Values holds the sorted distinct non-empty values when the column
	// qualifies as categorical; nil otherwise.
	Values []string
}

// Categorical reports whether the column should be offered as a
// set-membership filter: more than one distinct value, at most
// maxCategoricalValues.
func (p ColumnProfile) Categorical() bool {
	return p.Distinct > 1 && p.Distinct <= maxCategoricalValues
}

// Profile computes a ColumnProfile for every column, in column order.
func Profile(t *Table) []ColumnProfile {
	if t == nil {
		return nil
	}
	profiles := make([]ColumnProfile, 0, len(t.Columns))
	for _, col := range t.Columns {
		seen := make(map[string]bool)
		for _, r := range t.Rows {
			if v := r[col]; v != "" {
				seen[v] = true
			}
		}
		p := ColumnProfile{Name: col, Distinct: len(seen)}
		if p.Categorical() {
			p.Values = make([]string, 0, len(seen))
			for v := range seen {
				p.Values = append(p.Values, v)
			}
			sort.Strings(p.Values)
		}
		profiles = append(profiles, p)
	}
	return profiles
}

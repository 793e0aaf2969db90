package dashboard

import "github.com/KaramelBytes/tpdash-cli/internal/dataset"

// Criteria is the full set of user-supplied filter state. It is rebuilt
// from scratch on every interaction and never stored.
//
// The two empty-selection policies are deliberately asymmetric and part
// of the observable contract:
//
//   - Countries empty      => zero rows ("nothing selected" shows nothing)
//   - Categorical value
//     set empty            => filter inactive (excludes no rows)
//   - VisibleColumns empty => all columns shown
type Criteria struct {
	// Countries is the set of allowed Country values. Empty means no
	// selection, which yields an empty result.
	Countries []string
	// Search is a case-insensitive substring matched against every
	// column of a row (OR). Blank disables the filter.
	Search string
	// Categorical maps a column name to its allowed value set. Filters
	// AND across columns and OR within one column's set. An empty set
	// deactivates that filter.
	Categorical map[string][]string
	// VisibleColumns is an ordered projection applied after all row
	// filters, affecting presentation and export only. Empty shows all.
	VisibleColumns []string
}

// Defaults returns the criteria the dashboard starts with and that a
// reset restores: all countries selected, no search, no categorical
// restrictions, all columns visible.
func Defaults(t *dataset.Table) Criteria {
	return Criteria{Countries: t.DistinctValues("Country")}
}

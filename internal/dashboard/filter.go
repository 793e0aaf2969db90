package dashboard

import (
	"strings"

	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

// Apply computes the filtered view of a table under the given criteria.
// It is a pure function: the input table is never mutated, and the
// returned table shares row maps with it. Row predicates always see the
// full row; the visible-column projection happens last.
func Apply(t *dataset.Table, c Criteria) *dataset.Table {
	if t == nil {
		return &dataset.Table{}
	}

	rows := filterCountries(t.Rows, c.Countries)
	rows = filterSearch(rows, t.Columns, c.Search)
	rows = filterCategorical(rows, c.Categorical)

	return project(&dataset.Table{Columns: t.Columns, Rows: rows}, c.VisibleColumns)
}

// filterCountries keeps rows whose Country is in the allowed set. An
// empty set means nothing is selected and yields zero rows; this is
// the one filter where empty does not mean "all".
func filterCountries(rows []dataset.Row, countries []string) []dataset.Row {
	if len(countries) == 0 {
		return nil
	}
	allowed := toSet(countries)
	out := make([]dataset.Row, 0, len(rows))
	for _, r := range rows {
		if allowed[strings.ToLower(r["Country"])] {
			out = append(out, r)
		}
	}
	return out
}

// filterSearch keeps rows where at least one column value contains the
// term, case-folded on both sides. A blank term passes everything.
func filterSearch(rows []dataset.Row, columns []string, term string) []dataset.Row {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return rows
	}
	out := make([]dataset.Row, 0, len(rows))
	for _, r := range rows {
		for _, col := range columns {
			if strings.Contains(strings.ToLower(r[col]), term) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// filterCategorical applies each configured (column, allowed-values)
// pair: AND across filters, OR within one filter's value set. A filter
// with an empty value set is inactive, not "exclude everything".
func filterCategorical(rows []dataset.Row, filters map[string][]string) []dataset.Row {
	sets := make(map[string]map[string]bool)
	for col, allowed := range filters {
		if len(allowed) > 0 {
			sets[col] = toSet(allowed)
		}
	}
	if len(sets) == 0 {
		return rows
	}
	out := make([]dataset.Row, 0, len(rows))
	for _, r := range rows {
		pass := true
		for col, set := range sets {
			if !set[strings.ToLower(r[col])] {
				pass = false
				break
			}
		}
		if pass {
			out = append(out, r)
		}
	}
	return out
}

// project restricts the table to the ordered visible-column subset. An
// empty selection means "show all columns", the inverse of the country
// policy.
func project(t *dataset.Table, visible []string) *dataset.Table {
	if len(visible) == 0 {
		return t
	}
	cols := make([]string, 0, len(visible))
	for _, v := range visible {
		if t.HasColumn(v) {
			cols = append(cols, v)
		}
	}
	if len(cols) == 0 {
		return t
	}
	return &dataset.Table{Columns: cols, Rows: t.Rows}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[strings.ToLower(it)] = true
	}
	return set
}

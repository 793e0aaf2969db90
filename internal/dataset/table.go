package dataset

import "sort"

// MissingValue is the sentinel stored for mapped columns that a source
// record does not provide, so downstream column checks behave the same
// regardless of which format the data came from.
const MissingValue = "N/A"

// CoreColumns must be present for a dataset to be considered complete.
// Their absence is a warning, not a load failure.
var CoreColumns = []string{"Country", "TaxAuthority", "TPLaw", "TPStartDate"}

// Row is a single country's TP compliance profile keyed by column name.
type Row map[string]string

// Table is an ordered sequence of rows sharing a column set. The column
// set is discovered at load time, not fixed at compile time. A Table is
// immutable once loaded; filtering produces new Tables that share rows.
type Table struct {
	Columns []string
	Rows    []Row
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// HasColumn reports whether the named column was discovered at load time.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Value returns the value at row i for the named column, or "" when the
// row does not carry it.
func (t *Table) Value(i int, column string) string {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i][column]
}

// DistinctValues returns the sorted distinct non-empty values of a column.
func (t *Table) DistinctValues(column string) []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.Rows {
		v := r[column]
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

package dataset

import (
	"strconv"
	"strings"
)

// Row is a single dataset record keyed by column name. Cell values are kept
// as raw strings exactly as they appear in the source file.
type Row map[string]string

// Value returns the raw cell value and whether the column is present.
func (r Row) Value(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

// StringOr returns the trimmed cell value, or fallback when the column is
// absent or blank.
func (r Row) StringOr(column, fallback string) string {
	v, ok := r[column]
	if !ok {
		return fallback
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

// Float parses the cell as a float64. The second return is false when the
// column is absent or the value does not parse.
func (r Row) Float(column string) (float64, bool) {
	v, ok := r[column]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Table is an ordered, in-memory view of a loaded dataset. It is immutable
// after load; downstream stages only read it.
type Table struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnSet returns the column names as a lookup set.
func (t *Table) ColumnSet() map[string]struct{} {
	set := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		set[c] = struct{}{}
	}
	return set
}

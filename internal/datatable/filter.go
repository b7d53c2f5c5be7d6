package datatable

import (
	"fmt"
	"strings"

	"dealtable/internal/schema"

	"github.com/sahilm/fuzzy"
)

// MatchMode selects how the filter key is compared with cell text.
type MatchMode string

const (
	MatchContains MatchMode = "contains"
	MatchPrefix   MatchMode = "prefix"
	MatchExact    MatchMode = "exact"
	// MatchFuzzy matches subsequences and always ignores case.
	MatchFuzzy MatchMode = "fuzzy"
)

// ParseMatchMode converts a mode name to a MatchMode. The empty name is MatchContains.
func ParseMatchMode(name string) (MatchMode, error) {
	switch m := MatchMode(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return MatchContains, nil
	case MatchContains, MatchPrefix, MatchExact, MatchFuzzy:
		return m, nil
	}
	return "", fmt.Errorf("unknown match mode %q", name)
}

// FilterOptions configures row filtering.
// Columns restricts the searched columns by key; empty means every declared column.
type FilterOptions struct {
	CaseSensitive bool
	Columns       []string
	Match         MatchMode
}

// DefaultFilterOptions matches case-insensitive substrings across all columns.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{Match: MatchContains}
}

// searched returns the declared columns the options select, in schema order.
func (o FilterOptions) searched(columns schema.Schema) schema.Schema {
	if len(o.Columns) == 0 {
		return columns
	}
	want := make(map[string]bool, len(o.Columns))
	for _, k := range o.Columns {
		want[k] = true
	}
	var out schema.Schema
	for _, c := range columns {
		if want[c.Key] {
			out = append(out, c)
		}
	}
	return out
}

func (o FilterOptions) matcher(key string) func(text string) bool {
	if !o.CaseSensitive {
		key = strings.ToLower(key)
	}
	fold := func(s string) string {
		if o.CaseSensitive {
			return s
		}
		return strings.ToLower(s)
	}
	switch o.Match {
	case MatchPrefix:
		return func(text string) bool { return strings.HasPrefix(fold(text), key) }
	case MatchExact:
		return func(text string) bool { return fold(text) == key }
	case MatchFuzzy:
		return func(text string) bool { return len(fuzzy.Find(key, []string{text})) > 0 }
	default:
		return func(text string) bool { return strings.Contains(fold(text), key) }
	}
}

// FilteredRows returns the indices of rows whose text matches key in any
// searched column, in their original order. An empty key selects every row.
func FilteredRows(rows []Row, columns schema.Schema, key string, opts FilterOptions) []int {
	out := make([]int, 0, len(rows))
	if key == "" {
		for i := range rows {
			out = append(out, i)
		}
		return out
	}
	cols := opts.searched(columns)
	match := opts.matcher(key)
	for i, row := range rows {
		for _, c := range cols {
			if match(c.Text(row)) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// Package schema describes how the fields of a row are labelled and rendered.
//
// A Schema is an ordered list of Column descriptors. The column type only
// affects how a value is formatted for display; filtering always works on the
// type-independent Text of a cell.
package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dealtable/internal/jsonutil"

	"github.com/dustin/go-humanize"
)

// ErrUnknownType is returned when a column type name is not recognised.
var ErrUnknownType = errors.New("unknown column type")

// Type is the rendering type of a column.
type Type string

const (
	TypeInt         Type = "int"
	TypeString      Type = "string"
	TypeDecimal     Type = "decimal"
	TypeStringSlice Type = "string[]"
)

// ParseType converts a type name to a Type. The empty name is a string column.
func ParseType(name string) (Type, error) {
	switch t := Type(strings.TrimSpace(name)); t {
	case "":
		return TypeString, nil
	case TypeInt, TypeString, TypeDecimal, TypeStringSlice:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Column describes one renderable field of a row.
type Column struct {
	Key   string `yaml:"key" json:"key"`
	Type  Type   `yaml:"type" json:"type"`
	Label string `yaml:"label" json:"label"`
}

// Title returns the header text, falling back to the key.
func (c Column) Title() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Key
}

// Text returns the plain text of the cell, independent of the column type.
// A missing key renders as "".
func (c Column) Text(row map[string]any) string {
	v, ok := row[c.Key]
	if !ok {
		return ""
	}
	return jsonutil.ToString(v)
}

// Format returns the display text of the cell.
// Values whose dynamic type does not fit the column type fall back to Text.
func (c Column) Format(row map[string]any) string {
	v, ok := row[c.Key]
	if !ok || v == nil {
		return ""
	}
	switch c.Type {
	case TypeInt:
		if f, ok := jsonutil.ToFloat(v); ok && f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
	case TypeDecimal:
		if f, ok := jsonutil.ToFloat(v); ok {
			return humanize.FormatFloat("#,###.##", f)
		}
	case TypeStringSlice:
		switch list := v.(type) {
		case []any:
			return strings.Join(jsonutil.Strings(list), ", ")
		case []string:
			return strings.Join(list, ", ")
		}
	}
	return jsonutil.ToString(v)
}

// Schema is an ordered list of column descriptors.
type Schema []Column

// Validate checks that every column has a non-empty, unique key and a known type.
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s))
	for i, c := range s {
		if strings.TrimSpace(c.Key) == "" {
			return fmt.Errorf("column %d: empty key", i)
		}
		if seen[c.Key] {
			return fmt.Errorf("column %d: duplicate key %q", i, c.Key)
		}
		seen[c.Key] = true
		if _, err := ParseType(string(c.Type)); err != nil {
			return fmt.Errorf("column %q: %w", c.Key, err)
		}
	}
	return nil
}

// Keys returns the column keys in order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s))
	for i, c := range s {
		keys[i] = c.Key
	}
	return keys
}

// Lookup returns the column with the given key.
func (s Schema) Lookup(key string) (Column, bool) {
	for _, c := range s {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

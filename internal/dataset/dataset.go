// Package dataset supplies the rows shown by the table holder: a fixed,
// embedded deal list or rows read from a JSON or YAML file.
package dataset

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dealtable/internal/datatable"
	"dealtable/internal/jsonutil"

	"gopkg.in/yaml.v3"
)

//go:embed deals.json
var dealsJSON []byte

// Deals returns the built-in deal rows. Each call returns a fresh copy.
func Deals() []datatable.Row {
	rows, err := jsonutil.UnmarshalArrayAllowEmpty[datatable.Row](dealsJSON, "parse embedded deals")
	if err != nil {
		panic(err)
	}
	return rows
}

// Load reads rows from path. Files ending in .yaml or .yml are parsed as a
// YAML sequence of mappings; anything else as a JSON array of objects.
func Load(path string) ([]datatable.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data, path)
	default:
		return jsonutil.UnmarshalArrayAllowEmpty[datatable.Row](data, "parse rows "+path)
	}
}

func parseYAML(data []byte, path string) ([]datatable.Row, error) {
	var rows []datatable.Row
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse rows %s: %w", path, err)
	}
	return rows, nil
}

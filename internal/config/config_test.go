package config

import (
	"os"
	"path/filepath"
	"testing"

	"dealtable/internal/datatable"
	"dealtable/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv(PathEnv, "/tmp/custom.yaml")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", p)
}

func TestLoad_MissingFileIsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	opts, err := cfg.FilterOptions()
	require.NoError(t, err)
	assert.Equal(t, datatable.DefaultFilterOptions(), opts)

	s, err := cfg.Schema()
	require.NoError(t, err)
	assert.Equal(t, schema.DealColumns(), s)
}

func TestLoad_Full(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data: rows.yaml
filter:
  case_sensitive: true
  columns: [name]
  match: prefix
columns:
  - key: id
    type: int
    label: ID
  - key: name
    label: Name
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rows.yaml", cfg.Data)

	opts, err := cfg.FilterOptions()
	require.NoError(t, err)
	assert.Equal(t, datatable.FilterOptions{
		CaseSensitive: true,
		Columns:       []string{"name"},
		Match:         datatable.MatchPrefix,
	}, opts)

	s, err := cfg.Schema()
	require.NoError(t, err)
	assert.Equal(t, schema.Schema{
		{Key: "id", Type: schema.TypeInt, Label: "ID"},
		{Key: "name", Type: schema.TypeString, Label: "Name"},
	}, s)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "malformed.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("filter: [oops"), 0o644))
	_, err := Load(malformed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	cfg := &Config{Filter: Filter{Match: "regex"}}
	_, err = cfg.FilterOptions()
	assert.Error(t, err)

	cfg = &Config{Columns: []schema.Column{{Key: "id", Type: "uuid"}}}
	_, err = cfg.Schema()
	assert.ErrorIs(t, err, schema.ErrUnknownType)

	cfg = &Config{Columns: []schema.Column{{Key: "id"}, {Key: "id"}}}
	_, err = cfg.Schema()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Config{Data: "deals.json", Filter: Filter{Match: "fuzzy"}}
	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

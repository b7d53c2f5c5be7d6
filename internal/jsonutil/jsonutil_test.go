package jsonutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalWithContext(t *testing.T) {
	type record struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{name: "valid JSON", data: []byte(`{"name":"test"}`)},
		{name: "invalid JSON", data: []byte(`not json`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v record
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "test context")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", v.Name)
		})
	}
}

func TestUnmarshalArrayAllowEmpty(t *testing.T) {
	rows, err := UnmarshalArrayAllowEmpty[map[string]any]([]byte(`[{"id":1},{"id":2}]`), "rows")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2.0, rows[1]["id"])

	rows, err = UnmarshalArrayAllowEmpty[map[string]any]([]byte(`[]`), "rows")
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = UnmarshalArrayAllowEmpty[map[string]any]([]byte(`{"id":1}`), "rows")
	assert.Error(t, err)
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "John", "John"},
		{"whole float", 42.0, "42"},
		{"fractional float", 1250000.5, "1250000.5"},
		{"int", 7, "7"},
		{"int64", int64(-3), "-3"},
		{"bool", true, "true"},
		{"json number", json.Number("12.50"), "12.50"},
		{"string slice", []string{"a", "b"}, "a, b"},
		{"any slice", []any{"Ann", 3.0}, "Ann, 3"},
		{"empty slice", []any{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in     any
		want   float64
		wantOK bool
	}{
		{1.5, 1.5, true},
		{3, 3, true},
		{int64(4), 4, true},
		{" 2.25 ", 2.25, true},
		{json.Number("9"), 9, true},
		{"n/a", 0, false},
		{nil, 0, false},
		{[]any{1.0}, 0, false},
	}

	for _, tt := range tests {
		got, ok := ToFloat(tt.in)
		assert.Equal(t, tt.wantOK, ok, "ToFloat(%v) ok", tt.in)
		assert.Equal(t, tt.want, got, "ToFloat(%v)", tt.in)
	}
}

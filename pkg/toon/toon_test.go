package toon

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, value any) any {
	t.Helper()
	encoded, err := Marshal(value)
	require.NoError(t, err)
	decoded, err := Unmarshal(encoded)
	require.NoError(t, err, "decoding:\n%s", encoded)
	return decoded
}

func TestMarshalScalars(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"null", nil, "null\n"},
		{"bool", true, "true\n"},
		{"integer float", float64(42), "42\n"},
		{"fraction", 3.14, "3.14\n"},
		{"bare string", "hello world", "hello world\n"},
		{"string needing quotes", "a, b: c", "\"a, b: c\"\n"},
		{"numeric-looking string", "42", "\"42\"\n"},
		{"keyword-looking string", "null", "\"null\"\n"},
		{"empty string", "", "\"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestMarshalObject(t *testing.T) {
	value := map[string]any{
		"name":    "skillkit",
		"version": float64(2),
		"server": map[string]any{
			"host": "localhost",
			"port": float64(8080),
		},
	}

	out, err := Marshal(value)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"name: skillkit",
		"server:",
		"  host: localhost",
		"  port: 8080",
		"version: 2",
		"",
	}, "\n"), string(out))
}

func TestMarshalScalarArray(t *testing.T) {
	out, err := Marshal(map[string]any{
		"tags":  []any{"go", "cli", "toon"},
		"empty": []any{},
	})
	require.NoError(t, err)
	assert.Equal(t, "empty[0]:\ntags[3]: go,cli,toon\n", string(out))
}

func TestMarshalTabularArray(t *testing.T) {
	out, err := Marshal(map[string]any{
		"users": []any{
			map[string]any{"id": float64(1), "name": "alice"},
			map[string]any{"id": float64(2), "name": "bob"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"users[2]{id,name}:",
		"  1,alice",
		"  2,bob",
		"",
	}, "\n"), string(out))
}

func TestMarshalListFallback(t *testing.T) {
	out, err := Marshal(map[string]any{
		"mixed": []any{
			float64(1),
			map[string]any{"nested": true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"mixed[2]:",
		"  - 1",
		"  -",
		"    nested: true",
		"",
	}, "\n"), string(out))
}

func TestRoundTripScalarTrees(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"null", nil},
		{"bool", false},
		{"number", 1e21},
		{"negative fraction", -0.000125},
		{"string with colon", "key: value"},
		{"unicode string", "héllo wörld"},
		{"flat object", map[string]any{"a": float64(1), "b": "two", "c": nil}},
		{"nested object", map[string]any{
			"outer": map[string]any{
				"inner": map[string]any{"leaf": true},
			},
		}},
		{"empty object value", map[string]any{"cfg": map[string]any{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.value, roundTrip(t, tt.value))
		})
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	t.Run("decoded numbers tree", func(t *testing.T) {
		value := map[string]any{
			"count": json.Number("42"),
			"name":  "alice",
			"rows": []any{
				map[string]any{"id": json.Number("1"), "label": "first"},
				map[string]any{"id": json.Number("2"), "label": "second"},
			},
		}
		assert.NoError(t, VerifyRoundTrip(value))
	})

	t.Run("empty object", func(t *testing.T) {
		assert.NoError(t, VerifyRoundTrip(map[string]any{}))
	})

	t.Run("unsupported value", func(t *testing.T) {
		assert.Error(t, VerifyRoundTrip(map[string]any{"ch": make(chan int)}))
	})
}

func TestRoundTripEmptyObject(t *testing.T) {
	out, err := Marshal(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, map[string]any{}, roundTrip(t, map[string]any{}))
}

func TestUnmarshalBlankDocument(t *testing.T) {
	for _, input := range []string{"", "\n", "  \n\n"} {
		value, err := Unmarshal([]byte(input))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, value, "input %q", input)
	}
}

func TestRoundTripArrays(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"scalar array", map[string]any{"nums": []any{float64(1), float64(2), float64(3)}}},
		{"empty array", map[string]any{"none": []any{}}},
		{"strings with commas", map[string]any{"parts": []any{"a,b", "c", "d:e"}}},
		{"uniform records", map[string]any{
			"rows": []any{
				map[string]any{"id": float64(1), "label": "first", "ok": true},
				map[string]any{"id": float64(2), "label": "second", "ok": false},
			},
		}},
		{"records with quoted cells", map[string]any{
			"rows": []any{
				map[string]any{"msg": "hello, world", "n": float64(1)},
				map[string]any{"msg": "", "n": float64(2)},
			},
		}},
		{"mixed list", map[string]any{
			"items": []any{"scalar", map[string]any{"k": "v"}, float64(7)},
		}},
		{"list of arrays", map[string]any{
			"matrix": []any{[]any{float64(1), float64(2)}, []any{float64(3)}},
		}},
		{"root array", []any{float64(1), float64(2), float64(3)}},
		{"root tabular array", []any{
			map[string]any{"x": float64(0), "y": float64(1)},
			map[string]any{"x": float64(2), "y": float64(3)},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.value, roundTrip(t, tt.value))
		})
	}
}

func TestRoundTripAwkwardKeys(t *testing.T) {
	value := map[string]any{
		"plain":       "v",
		"with space":  "v",
		"with: colon": "v",
		"with[idx]":   "v",
		"":            "v",
	}
	assert.Equal(t, value, roundTrip(t, value))
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"odd indentation", "a:\n   b: 1\n", "multiple of two"},
		{"tab indentation", "a:\n\tb: 1\n", "tab indentation"},
		{"count mismatch inline", "nums[3]: 1,2\n", "declares 3 values but has 2"},
		{"count mismatch rows", "rows[2]{id}:\n  1\n", "declares 2 rows but has 1"},
		{"row width mismatch", "rows[1]{id,name}:\n  1\n", "1 cells but 2 fields"},
		{"duplicate key", "a: 1\na: 2\n", "duplicate key"},
		{"missing colon", "justakey\nb: 1\n", "missing key"},
		{"list item marker missing", "items[1]:\n  oops\n", "expected list item"},
		{"trailing garbage indent", "a: 1\n    b: 2\n", "unexpected indentation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUnmarshalAcceptsBlankLines(t *testing.T) {
	input := "a: 1\n\nb: 2\n\n"
	v, err := Unmarshal([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1), "b": float64(2)}, v)
}

func TestMarshalRejectsUnsupportedTypes(t *testing.T) {
	_, err := Marshal(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scalar type")
}

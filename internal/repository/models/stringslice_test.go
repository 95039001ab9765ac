package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSlice_Value(t *testing.T) {
	s := StringSlice{"A) one", "B) two"}
	val, err := s.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["A) one","B) two"]`, val)
}

func TestStringSlice_Value_Nil(t *testing.T) {
	var s StringSlice
	val, err := s.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", val)
}

func TestStringSlice_RoundTripWithDelimiterCharacters(t *testing.T) {
	// Option text may legally contain pipes, quotes or newlines; the JSON
	// encoding must round-trip all of them.
	original := StringSlice{`A) a | b`, `B) quote " inside`, "C) line\nbreak"}

	val, err := original.Value()
	assert.NoError(t, err)

	var scanned StringSlice
	err = scanned.Scan(val)
	assert.NoError(t, err)
	assert.Equal(t, original, scanned)
}

func TestStringSlice_Scan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  StringSlice
	}{
		{"json string", `["x","y"]`, StringSlice{"x", "y"}},
		{"json bytes", []byte(`["x"]`), StringSlice{"x"}},
		{"nil", nil, StringSlice{}},
		{"empty string", "", StringSlice{}},
		{"literal null", "null", StringSlice{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSlice
			err := s.Scan(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestStringSlice_Scan_UnsupportedType(t *testing.T) {
	var s StringSlice
	err := s.Scan(42)
	assert.Error(t, err)
}

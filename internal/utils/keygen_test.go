package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatID(t *testing.T) {
	assert.Equal(t, "PROD-007", FormatID(ProductIDPrefix, 7))
	assert.Equal(t, "REF-042", FormatID(ScenarioIDPrefix, 42))
	assert.Equal(t, "PROD-1000", FormatID(ProductIDPrefix, 1000))
}

func TestParseIDNumber(t *testing.T) {
	cases := []struct {
		id   string
		want int
		ok   bool
	}{
		{"PROD-001", 1, true},
		{"PROD-1234", 1234, true},
		{"PROD-", 0, false},
		{"PROD-abc", 0, false},
		{"REF-003", 0, false},
		{"PROD--1", 0, false},
	}
	for _, tc := range cases {
		n, ok := ParseIDNumber(ProductIDPrefix, tc.id)
		assert.Equal(t, tc.ok, ok, tc.id)
		assert.Equal(t, tc.want, n, tc.id)
	}
}

func TestHighestIDNumber(t *testing.T) {
	assert.Equal(t, 0, HighestIDNumber(ProductIDPrefix, nil))
	assert.Equal(t, 12, HighestIDNumber(ProductIDPrefix, []string{"PROD-003", "PROD-012", "REF-099", "custom"}))
}

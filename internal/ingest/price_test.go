package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice_MarkedUpCell(t *testing.T) {
	n, ok := parsePrice("*U$1.234*")

	assert.True(t, ok)
	assert.Equal(t, 1234, n)
}

func TestParsePrice_PlainDollarSign(t *testing.T) {
	n, ok := parsePrice("$500")

	assert.True(t, ok)
	assert.Equal(t, 500, n)
}

func TestParsePrice_SurroundingWhitespace(t *testing.T) {
	n, ok := parsePrice("  *U$750*  ")

	assert.True(t, ok)
	assert.Equal(t, 750, n)
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, raw := range []string{"", "*", "U$", "*CONSULTAR*", "U$12x3"} {
		_, ok := parsePrice(raw)
		assert.False(t, ok, "raw=%q", raw)
	}
}

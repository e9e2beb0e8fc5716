package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBrandRow(t *testing.T) {
	assert.True(t, isBrandRow([]string{"", "*Sony*"}))
	assert.True(t, isBrandRow([]string{"   ", "*Sony (Usado)*"}))

	// A priced cell is never a brand, even when marker-wrapped.
	assert.False(t, isBrandRow([]string{"", "*U$500*"}))
	// Non-empty first cell disqualifies the row.
	assert.False(t, isBrandRow([]string{"x", "*Sony*"}))
	// Missing markers disqualify.
	assert.False(t, isBrandRow([]string{"", "Sony"}))
	assert.False(t, isBrandRow(nil))
}

func TestIsProductRow(t *testing.T) {
	assert.True(t, isProductRow([]string{"*U$500*", "iPhone 13"}))

	assert.False(t, isProductRow([]string{"U$500", "iPhone 13"}), "missing markers")
	assert.False(t, isProductRow([]string{"*500*", "iPhone 13"}), "missing currency marker")
	assert.False(t, isProductRow([]string{"*U$500*"}), "short row")
}

func TestGenericPredicatesMutuallyExclusive(t *testing.T) {
	rows := [][]string{
		{"", "*Sony*"},
		{"*U$500*", "📱 iPhone"},
		{"", "loose text"},
		{"*U$900*"},
		{},
		{"", "*U$100*"},
	}

	for _, row := range rows {
		assert.False(t, isBrandRow(row) && isProductRow(row), "row=%v", row)
	}
}

func TestNotebookPredicatesMutuallyExclusive(t *testing.T) {
	rows := [][]string{
		{"*U$1000*", "🔵💻 ACER Predator"},
		{"", "16GB RAM, 512GB SSD"},
		{"", "*Marca*"},
		{"*U$800*", "no pictograph"},
	}

	for _, row := range rows {
		assert.False(t, isNotebookProductRow(row) && isNotebookSpecsRow(row), "row=%v", row)
	}
}

func TestExtractBrandInfo(t *testing.T) {
	brand, details := extractBrandInfo([]string{"", "*Sony (Usado)*"})
	assert.Equal(t, "Sony", brand)
	assert.Equal(t, "Usado", details)

	brand, details = extractBrandInfo([]string{"", "*Sony*"})
	assert.Equal(t, "Sony", brand)
	assert.Empty(t, details)
}

func TestNotebookBrand(t *testing.T) {
	assert.Equal(t, "ACER", notebookBrand("🔵💻 ACER Predator Helios"))
	assert.Equal(t, "HP", notebookBrand("HP Pavilion 15"))
	assert.Equal(t, "LENOVO", notebookBrand("LENOVO IdeaPad 3"))
	assert.Equal(t, "Unknown Brand", notebookBrand("🔵💻 Dell XPS"))
}

func TestModelCleaners(t *testing.T) {
	assert.Equal(t, "iPhone 13 128GB", cleanedModel("📱 iPhone 13 128GB"))
	assert.Equal(t, "ACER Predator", cleanedNotebookModel("🔵💻 ACER Predator"))

	// The generic cleaner strips every pictograph, wherever it sits.
	assert.Equal(t, "Canon EOS", cleanedModel("📷 Canon EOS 📷"))
}

func cleanedModel(s string) string {
	return trimmedReplace(modelCleaner, s)
}

func cleanedNotebookModel(s string) string {
	return trimmedReplace(notebookModelCleaner, s)
}

func trimmedReplace(r *strings.Replacer, s string) string {
	return strings.TrimSpace(r.Replace(s))
}

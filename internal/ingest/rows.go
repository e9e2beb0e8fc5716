package ingest

import (
	"regexp"
	"strings"
)

const (
	marker         = "*"
	currencyMarker = "U$"
	laptopMarker   = "💻"

	// Brand applied to products that appear before any brand row.
	defaultBrand = "Sin Marca"
	// Brand for notebook rows that match no known manufacturer.
	unknownBrand = "Unknown Brand"
)

// Brand cells may carry a parenthesized sub-label: "*Sony (Usado)*".
var brandDetails = regexp.MustCompile(`^([^(]+)\s*\(([^)]+)\)`)

// Model cells are decorated with pictographs in the sheet; they are not part
// of the product name.
var modelCleaner = strings.NewReplacer(
	"📱", "", "📷", "", "🔭", "", "💻", "", "🖥️", "",
	"🎧", "", "🔋", "", "🔌", "", "📳", "", "🪙", "",
)

// Notebook models are flagged with a colored-dot/laptop pictograph pair.
var notebookModelCleaner = strings.NewReplacer(
	"🟤💻", "", "🔵💻", "", "🟣💻", "", "🟠💻", "", "🔴💻", "",
)

// Scanned in this order; first substring match wins.
var notebookBrands = []string{"ACER", "HP", "LENOVO", "MSI", "SAMSUNG"}

// cell returns the trimmed cell at index i, tolerating short rows.
func cell(cols []string, i int) string {
	if i >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[i])
}

// isBrandRow reports whether a row declares a new brand context: an empty
// first cell and a marker-wrapped second cell that carries no price.
func isBrandRow(cols []string) bool {
	if len(cols) == 0 {
		return false
	}
	c1 := cell(cols, 1)
	return cell(cols, 0) == "" &&
		strings.HasPrefix(c1, marker) &&
		strings.HasSuffix(c1, marker) &&
		!strings.Contains(c1, currencyMarker)
}

// isProductRow reports whether a row declares a sellable item: the price
// lives in the first cell, the name in the second.
func isProductRow(cols []string) bool {
	if len(cols) < 2 {
		return false
	}
	c0 := cell(cols, 0)
	return strings.Contains(c0, currencyMarker) &&
		strings.HasPrefix(c0, marker) &&
		strings.HasSuffix(c0, marker)
}

// isNotebookProductRow matches the notebook tab's layout: a priced first cell
// and a laptop pictograph in the second.
func isNotebookProductRow(cols []string) bool {
	if len(cols) < 2 {
		return false
	}
	return strings.Contains(cell(cols, 0), currencyMarker) &&
		strings.Contains(cell(cols, 1), laptopMarker)
}

// isNotebookSpecsRow matches the free-text specs line that follows a notebook
// product row.
func isNotebookSpecsRow(cols []string) bool {
	if len(cols) < 2 {
		return false
	}
	c1 := cell(cols, 1)
	return cell(cols, 0) == "" &&
		!strings.HasPrefix(c1, marker) &&
		!strings.Contains(c1, laptopMarker)
}

// extractBrandInfo pulls the brand and optional parenthesized sub-label out
// of a classified brand row. "*Sony (Usado)*" yields ("Sony", "Usado");
// "*Sony*" yields ("Sony", "").
func extractBrandInfo(cols []string) (brand, details string) {
	clean := strings.TrimSpace(strings.ReplaceAll(cell(cols, 1), marker, ""))

	if m := brandDetails.FindStringSubmatch(clean); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return clean, ""
}

// notebookBrand derives the manufacturer from the raw model text.
func notebookBrand(model string) string {
	for _, b := range notebookBrands {
		if strings.Contains(model, b) {
			return b
		}
	}
	return unknownBrand
}

package ingest

import (
	"strconv"
	"strings"
)

// Sheet prices look like "*U$1.234*": asterisk flags and a currency prefix
// around a dot-separated integer. Everything but the digits is stripped
// before parsing.
var priceCleaner = strings.NewReplacer(
	"*", "",
	".", "",
	"U$", "",
	"$", "",
)

// parsePrice extracts the integer dollar amount from a raw price cell.
// Cells that do not reduce to a base-10 integer report ok=false so callers
// drop the row instead of storing a zero price.
func parsePrice(raw string) (int, bool) {
	cleaned := strings.TrimSpace(priceCleaner.Replace(raw))
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Package sheets turns human-shared Google Sheets links into machine-fetchable
// CSV export URLs.
package sheets

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Matches both the "published to web" form (/d/e/<token>/...#gid=N) and
	// the standard document form (/d/<docId>/...).
	sheetPath = regexp.MustCompile(`spreadsheets/d/(?:e/)?([^/]+)/.*?(?:#gid=)?(\d+)?$`)

	// Best-effort fallback: swap a trailing pub/pubhtml/htmlview segment for
	// the CSV export suffix.
	pubSuffix = regexp.MustCompile(`/((pub|pubhtml|htmlview)(#gid=\d+)?)?$`)
)

// ExportURL converts a spreadsheet share URL into a URL that serves the
// sheet's tab as CSV. Published documents keep their e/ prefix, which Google
// requires for that form; a missing gid fragment defaults to the first tab.
// Pure and deterministic: the same input always yields the same export URL.
func ExportURL(shareURL string) string {
	m := sheetPath.FindStringSubmatch(shareURL)
	if m == nil {
		return pubSuffix.ReplaceAllString(shareURL, "/pub?output=csv")
	}

	docID := m[1]
	if strings.Contains(shareURL, "/e/") {
		docID = "e/" + docID
	}

	gid := m[2]
	if gid == "" {
		gid = "0"
	}

	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/pub?output=csv&gid=%s", docID, gid)
}

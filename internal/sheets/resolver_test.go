package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportURL_PublishedLinkWithGid(t *testing.T) {
	url := "https://docs.google.com/spreadsheets/d/e/2PACX-1vQQptMdgB5hIEGG/pubhtml#gid=2118976812"

	got := ExportURL(url)

	assert.Equal(t, "https://docs.google.com/spreadsheets/d/e/2PACX-1vQQptMdgB5hIEGG/pub?output=csv&gid=2118976812", got)
}

func TestExportURL_PublishedLinkWithoutGid(t *testing.T) {
	url := "https://docs.google.com/spreadsheets/d/e/2PACX-1vQQptMdgB5hIEGG/pubhtml"

	got := ExportURL(url)

	assert.Equal(t, "https://docs.google.com/spreadsheets/d/e/2PACX-1vQQptMdgB5hIEGG/pub?output=csv&gid=0", got)
}

func TestExportURL_StandardDocumentLink(t *testing.T) {
	url := "https://docs.google.com/spreadsheets/d/1AbCdEfGh/edit"

	got := ExportURL(url)

	assert.Equal(t, "https://docs.google.com/spreadsheets/d/1AbCdEfGh/pub?output=csv&gid=0", got)
}

func TestExportURL_FallbackSuffixRewrite(t *testing.T) {
	// No /d/<id>/ segment at all: fall back to swapping the trailing
	// publish segment for the CSV export suffix.
	url := "https://docs.google.com/spreadsheets/pubhtml"

	got := ExportURL(url)

	assert.Equal(t, "https://docs.google.com/spreadsheets/pub?output=csv", got)
}

func TestExportURL_Deterministic(t *testing.T) {
	url := "https://docs.google.com/spreadsheets/d/e/2PACX-abc/pubhtml#gid=42"

	assert.Equal(t, ExportURL(url), ExportURL(url))
}

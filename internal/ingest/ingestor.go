// Package ingest turns published sheet tabs into validated Product records.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"catalog-service/internal/models"
	"catalog-service/internal/observability"
	"catalog-service/internal/sheets"
)

// Ingestor fetches and parses one category's sheet tab per call. It never
// returns an error: fetch and parse failures are logged and the category
// degrades to an empty list, so one broken tab cannot take down a refresh.
type Ingestor struct {
	client     *http.Client
	logger     *logrus.Logger
	multiplier float64
}

func New(logger *logrus.Logger, markupPercent float64, fetchTimeout time.Duration) *Ingestor {
	return &Ingestor{
		client:     &http.Client{Timeout: fetchTimeout},
		logger:     logger,
		multiplier: 1 + markupPercent/100,
	}
}

// Category ingests the sheet tab behind shareURL into products tagged with
// the given category. The notebooks tab uses a different column layout and is
// handled by its own path.
func (ing *Ingestor) Category(ctx context.Context, category models.Category, shareURL string) []models.Product {
	if category == models.CategoryNotebooks {
		return ing.notebooks(ctx, shareURL)
	}

	rows := ing.fetchRows(ctx, category, shareURL)

	var products []models.Product
	currentBrand := defaultBrand
	var currentDetails *string
	seq := 0

	// Row 0 is the sheet's title banner.
	for i := 1; i < len(rows); i++ {
		cols := rows[i]
		if len(cols) < 2 {
			continue
		}

		if isBrandRow(cols) {
			brand, details := extractBrandInfo(cols)
			currentBrand = brand
			currentDetails = nil
			if details != "" {
				currentDetails = &details
			}
			continue
		}

		if !isProductRow(cols) {
			continue
		}

		price, ok := parsePrice(cell(cols, 0))
		if !ok {
			continue
		}
		model := strings.TrimSpace(modelCleaner.Replace(cell(cols, 1)))
		if model == "" {
			continue
		}

		seq++
		products = append(products, models.Product{
			ID:       fmt.Sprintf("%s-%d", category, seq),
			Category: category,
			Brand:    currentBrand,
			Model:    model,
			Price:    float64(price) * ing.multiplier,
			Details:  currentDetails,
		})
	}

	return products
}

// notebooks handles the notebooks tab: the product row carries price and
// model, and the following row, when it matches the specs shape, supplies the
// product's details and is consumed so it is not reprocessed.
func (ing *Ingestor) notebooks(ctx context.Context, shareURL string) []models.Product {
	rows := ing.fetchRows(ctx, models.CategoryNotebooks, shareURL)

	var notebooks []models.Product
	seq := 0

	// The notebooks tab has two title rows.
	for i := 2; i < len(rows); i++ {
		cols := rows[i]
		if len(cols) < 2 {
			continue
		}
		if !isNotebookProductRow(cols) {
			continue
		}

		specs := ""
		if i+1 < len(rows) && isNotebookSpecsRow(rows[i+1]) {
			specs = cell(rows[i+1], 1)
			i++
		}

		price, ok := parsePrice(cell(cols, 0))
		if !ok {
			continue
		}
		model := strings.TrimSpace(notebookModelCleaner.Replace(cell(cols, 1)))
		if model == "" {
			continue
		}

		seq++
		product := models.Product{
			ID:       fmt.Sprintf("notebook-%d", seq),
			Category: models.CategoryNotebooks,
			Brand:    notebookBrand(cell(cols, 1)),
			Model:    model,
			Price:    float64(price) * ing.multiplier,
		}
		if specs != "" {
			product.Details = &specs
		}
		notebooks = append(notebooks, product)
	}

	return notebooks
}

// fetchRows resolves the share URL, fetches the CSV export and tokenizes it.
// Malformed lines are skipped with a warning; fully empty lines never produce
// a row. Any failure yields a nil row set.
func (ing *Ingestor) fetchRows(ctx context.Context, category models.Category, shareURL string) [][]string {
	csvURL := sheets.ExportURL(shareURL)
	log := ing.logger.WithField("category", category)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		log.WithError(err).Error("Failed to build sheet request")
		return nil
	}

	start := time.Now()
	resp, err := ing.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Failed to fetch sheet")
		return nil
	}
	defer resp.Body.Close()
	observability.SheetFetchDuration.WithLabelValues(string(category)).Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Error("Sheet fetch returned non-OK status")
		return nil
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // sheet rows have uneven widths
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.WithError(err).Warn("Skipping malformed CSV line")
			continue
		}
		rows = append(rows, record)
	}
	return rows
}

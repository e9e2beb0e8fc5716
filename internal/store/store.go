// Package store holds the aggregated catalog: one in-memory snapshot of every
// category's products, refreshed on demand and persisted as a whole.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"catalog-service/internal/models"
	"catalog-service/internal/observability"
)

// Fetcher pulls one category's products from its source sheet. It must not
// fail: broken categories come back as empty lists.
type Fetcher interface {
	Category(ctx context.Context, category models.Category, shareURL string) []models.Product
}

// Catalog aggregates per-category ingestion results. The product list is only
// ever replaced wholesale; reads hand out copies of the last completed
// snapshot and never block on an in-flight refresh.
type Catalog struct {
	fetcher       Fetcher
	sheetURLs     map[models.Category]string
	snapshots     *SnapshotStore
	logger        *logrus.Logger
	cacheDuration time.Duration
	now           func() time.Time

	mu          sync.Mutex
	products    []models.Product
	lastFetched time.Time
	loading     bool
}

func New(fetcher Fetcher, sheetURLs map[models.Category]string, snapshots *SnapshotStore, logger *logrus.Logger, cacheDuration time.Duration) *Catalog {
	return &Catalog{
		fetcher:       fetcher,
		sheetURLs:     sheetURLs,
		snapshots:     snapshots,
		logger:        logger,
		cacheDuration: cacheDuration,
		now:           time.Now,
	}
}

// Rehydrate loads the persisted snapshot, if any, so a restarted service
// serves the previous catalog immediately. Callers follow up with a
// background Refresh(false) to renew a stale snapshot.
func (c *Catalog) Rehydrate(ctx context.Context) {
	if c.snapshots == nil {
		return
	}

	snap, err := c.snapshots.Load(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("Could not load persisted catalog snapshot")
		return
	}
	if snap == nil {
		return
	}

	c.mu.Lock()
	c.products = snap.Products
	if snap.LastFetchedAt > 0 {
		c.lastFetched = time.UnixMilli(snap.LastFetchedAt)
	}
	c.mu.Unlock()

	c.logger.WithField("products", len(snap.Products)).Info("Catalog rehydrated from persisted snapshot")
}

// Refresh re-ingests every configured category and replaces the snapshot.
// It is a no-op while another refresh is in flight (the request is dropped,
// not queued) and, unless forced, while the current snapshot is younger than
// the cache window. Returns true when a refresh actually ran.
func (c *Catalog) Refresh(ctx context.Context, force bool) bool {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		observability.RefreshTotal.WithLabelValues("in_flight").Inc()
		return false
	}
	if !force && !c.lastFetched.IsZero() && c.now().Sub(c.lastFetched) < c.cacheDuration {
		c.mu.Unlock()
		observability.RefreshTotal.WithLabelValues("cached").Inc()
		return false
	}
	c.loading = true
	c.mu.Unlock()

	// Fan out one fetch per category, fan in when all settle. A slow or
	// failing category never short-circuits the others; the fetcher contract
	// already isolates those to empty lists.
	results := make([][]models.Product, len(models.Categories))
	var wg sync.WaitGroup
	var panicked bool
	var panicMu sync.Mutex

	for i, category := range models.Categories {
		url, ok := c.sheetURLs[category]
		if !ok {
			continue
		}
		wg.Add(1)
		go func(i int, category models.Category, url string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					c.logger.WithField("category", category).Errorf("Ingestion panicked: %v", r)
					panicMu.Lock()
					panicked = true
					panicMu.Unlock()
				}
			}()
			results[i] = c.fetcher.Category(ctx, category, url)
		}(i, category, url)
	}
	wg.Wait()

	if panicked {
		// Keep the stale catalog rather than publishing a partial one.
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
		observability.RefreshTotal.WithLabelValues("aborted").Inc()
		return true
	}

	var all []models.Product
	for _, categoryProducts := range results {
		all = append(all, categoryProducts...)
	}

	fetchedAt := c.now()
	c.mu.Lock()
	c.products = all
	c.lastFetched = fetchedAt
	c.loading = false
	c.mu.Unlock()

	observability.RefreshTotal.WithLabelValues("success").Inc()
	for i, category := range models.Categories {
		observability.ProductsInCatalog.WithLabelValues(string(category)).Set(float64(len(results[i])))
	}
	c.logger.WithField("products", len(all)).Info("Catalog refreshed")

	if c.snapshots != nil {
		snap := Snapshot{Products: all, LastFetchedAt: fetchedAt.UnixMilli()}
		if err := c.snapshots.Save(ctx, snap); err != nil {
			c.logger.WithError(err).Warn("Could not persist catalog snapshot")
		}
	}

	return true
}

// Products returns a copy of the current snapshot.
func (c *Catalog) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Status reports the snapshot's size and freshness.
func (c *Catalog) Status() models.CatalogStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := models.CatalogStatus{
		ProductCount: len(c.products),
		IsLoading:    c.loading,
	}
	if !c.lastFetched.IsZero() {
		t := c.lastFetched
		status.LastFetchedAt = &t
	}
	return status
}

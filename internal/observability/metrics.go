// Package observability exposes the service's Prometheus metrics.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_refresh_total",
			Help: "Catalog refresh attempts by outcome",
		},
		[]string{"result"},
	)

	ProductsInCatalog = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Products in the current catalog snapshot",
		},
		[]string{"category"},
	)

	SheetFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sheet_fetch_duration_seconds",
			Help:    "Time spent fetching one category's sheet export",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"category"},
	)
)

func Register() {
	prometheus.MustRegister(RefreshTotal, ProductsInCatalog, SheetFetchDuration)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

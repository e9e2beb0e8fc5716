package ingest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"catalog-service/internal/models"
)

func testIngestor(markupPercent float64) *Ingestor {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, markupPercent, 5*time.Second)
}

func csvServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCategory_GenericSheet(t *testing.T) {
	srv := csvServer(t, "Lista de Precios,\n"+
		",*BrandX (New)*\n"+
		"*U$500*,📱 ModelA\n"+
		"*U$250*,📱 ModelB\n")

	products := testIngestor(20).Category(context.Background(), models.CategoryCelulares, srv.URL)

	assert.Len(t, products, 2)

	assert.Equal(t, "celulares-1", products[0].ID)
	assert.Equal(t, models.CategoryCelulares, products[0].Category)
	assert.Equal(t, "BrandX", products[0].Brand)
	assert.Equal(t, "ModelA", products[0].Model)
	assert.Equal(t, 600.0, products[0].Price)
	if assert.NotNil(t, products[0].Details) {
		assert.Equal(t, "New", *products[0].Details)
	}

	assert.Equal(t, "celulares-2", products[1].ID)
	assert.Equal(t, "ModelB", products[1].Model)
	assert.Equal(t, 300.0, products[1].Price)
}

func TestCategory_BrandCarryOver(t *testing.T) {
	srv := csvServer(t, "titulo,\n"+
		"*U$100*,📱 Before Any Brand\n"+
		",*Sony*\n"+
		"*U$200*,📷 Alpha\n"+
		"*U$300*,📷 Beta\n"+
		",*Nikon (Nuevo)*\n"+
		"*U$400*,📷 Gamma\n")

	products := testIngestor(0).Category(context.Background(), models.CategoryCamaras, srv.URL)

	assert.Len(t, products, 4)
	assert.Equal(t, "Sin Marca", products[0].Brand)
	assert.Nil(t, products[0].Details)
	assert.Equal(t, "Sony", products[1].Brand)
	assert.Equal(t, "Sony", products[2].Brand)
	assert.Equal(t, "Nikon", products[3].Brand)
	if assert.NotNil(t, products[3].Details) {
		assert.Equal(t, "Nuevo", *products[3].Details)
	}
}

func TestCategory_DropsInvalidRows(t *testing.T) {
	srv := csvServer(t, "titulo,\n"+
		",*Marca*\n"+
		"*U$CONSULTAR*,📱 Sin Precio\n"+ // price does not parse
		"*U$150*,📱\n"+ // model empty after cleaning
		"*U$150*,📱 Valido\n"+
		"texto suelto\n"+ // noise
		"*U$200*,📱 Otro\n")

	products := testIngestor(0).Category(context.Background(), models.CategoryVarios, srv.URL)

	// Sequencing only counts accepted products.
	assert.Len(t, products, 2)
	assert.Equal(t, "varios-1", products[0].ID)
	assert.Equal(t, "Valido", products[0].Model)
	assert.Equal(t, "varios-2", products[1].ID)
	assert.Equal(t, "Otro", products[1].Model)
}

func TestCategory_QuotedCellsWithDelimiter(t *testing.T) {
	srv := csvServer(t, "titulo,\n"+
		",*Apple*\n"+
		"*U$1.999*,\"💻 MacBook Pro 14, M3\"\n")

	products := testIngestor(0).Category(context.Background(), models.CategoryMacbooks, srv.URL)

	assert.Len(t, products, 1)
	assert.Equal(t, "MacBook Pro 14, M3", products[0].Model)
	assert.Equal(t, 1999.0, products[0].Price)
}

func TestCategory_FetchFailureDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	products := testIngestor(20).Category(context.Background(), models.CategoryCelulares, srv.URL)
	assert.Empty(t, products)

	// Unreachable host behaves the same way.
	srv.Close()
	products = testIngestor(20).Category(context.Background(), models.CategoryCelulares, srv.URL)
	assert.Empty(t, products)
}

func TestNotebooks_ProductWithSpecsRow(t *testing.T) {
	srv := csvServer(t, "NOTEBOOKS,\n"+
		"Precios al dia,\n"+
		"*U$1000*,🔵💻 ACER Predator\n"+
		",\"16GB RAM, 512GB SSD\"\n")

	products := testIngestor(0).Category(context.Background(), models.CategoryNotebooks, srv.URL)

	assert.Len(t, products, 1)
	assert.Equal(t, "notebook-1", products[0].ID)
	assert.Equal(t, models.CategoryNotebooks, products[0].Category)
	assert.Equal(t, "ACER", products[0].Brand)
	assert.Equal(t, "ACER Predator", products[0].Model)
	assert.Equal(t, 1000.0, products[0].Price)
	if assert.NotNil(t, products[0].Details) {
		assert.Equal(t, "16GB RAM, 512GB SSD", *products[0].Details)
	}
}

func TestNotebooks_ConsecutiveProductsWithoutSpecs(t *testing.T) {
	srv := csvServer(t, "NOTEBOOKS,\n"+
		"Precios al dia,\n"+
		"*U$1000*,🔵💻 ACER Predator\n"+
		"*U$1200*,🔴💻 HP Pavilion\n"+
		",\"8GB RAM\"\n")

	products := testIngestor(0).Category(context.Background(), models.CategoryNotebooks, srv.URL)

	assert.Len(t, products, 2)
	// The first product has no specs row of its own.
	assert.Nil(t, products[0].Details)
	assert.Equal(t, "HP", products[1].Brand)
	if assert.NotNil(t, products[1].Details) {
		assert.Equal(t, "8GB RAM", *products[1].Details)
	}
}

func TestNotebooks_SpecsRowIsConsumed(t *testing.T) {
	// The specs row must not be reprocessed as a product row on the next
	// iteration, and sequencing stays monotonic.
	srv := csvServer(t, "a,\n"+
		"b,\n"+
		"*U$500*,🟣💻 LENOVO IdeaPad\n"+
		",specs uno\n"+
		"*U$600*,🟠💻 MSI Katana\n"+
		",specs dos\n")

	products := testIngestor(0).Category(context.Background(), models.CategoryNotebooks, srv.URL)

	assert.Len(t, products, 2)
	assert.Equal(t, "notebook-1", products[0].ID)
	assert.Equal(t, "notebook-2", products[1].ID)
	assert.Equal(t, "LENOVO", products[0].Brand)
	assert.Equal(t, "MSI", products[1].Brand)
}

func TestCategory_MarkupIsMultiplicative(t *testing.T) {
	body := "titulo,\n" +
		",*Marca*\n" +
		"*U$1.234*,📱 Modelo\n"

	base := testIngestor(0).Category(context.Background(), models.CategoryCelulares, csvServer(t, body).URL)
	marked := testIngestor(50).Category(context.Background(), models.CategoryCelulares, csvServer(t, body).URL)

	assert.Len(t, base, 1)
	assert.Len(t, marked, 1)
	assert.Equal(t, 1234.0, base[0].Price)
	assert.Equal(t, 1234.0*1.5, marked[0].Price)
}

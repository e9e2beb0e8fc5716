package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/middleware"
	"catalog-service/internal/models"
	"catalog-service/internal/store"
	"catalog-service/internal/whatsapp"
)

var sortOrders = map[string]func(a, b models.Product) bool{
	"price-asc":  func(a, b models.Product) bool { return a.Price < b.Price },
	"price-desc": func(a, b models.Product) bool { return a.Price > b.Price },
	"brand-asc":  func(a, b models.Product) bool { return strings.ToLower(a.Brand) < strings.ToLower(b.Brand) },
	"brand-desc": func(a, b models.Product) bool { return strings.ToLower(a.Brand) > strings.ToLower(b.Brand) },
}

type CatalogHandler struct {
	catalog *store.Catalog
	inquiry *whatsapp.Inquiry
}

func NewCatalogHandler(catalog *store.Catalog, inquiry *whatsapp.Inquiry) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		inquiry: inquiry,
	}
}

func respondError(c *gin.Context, status int, code, message, field string) {
	c.JSON(status, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: middleware.GetRequestID(c),
	})
}

// GetProducts lists the catalog snapshot
// @Summary List products
// @Description List catalog products with optional category/brand filters and sorting
// @Tags products
// @Produce json
// @Param category query string false "Category filter"
// @Param brand query string false "Brand filter"
// @Param sort query string false "Sort order" Enums(price-asc, price-desc, brand-asc, brand-desc)
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.ProductListResponse
// @Router /products [get]
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	category := models.Category(c.Query("category"))
	if category != "" && !category.Valid() {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown category", "category")
		return
	}

	sortOrder := c.DefaultQuery("sort", "price-asc")
	less, ok := sortOrders[sortOrder]
	if !ok {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown sort order", "sort")
		return
	}

	brand := c.Query("brand")

	products := h.catalog.Products()
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if brand != "" && p.Brand != brand {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool { return less(filtered[i], filtered[j]) })

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	pageItems := filtered[start:end]
	for i := range pageItems {
		pageItems[i].WhatsAppURL = h.inquiry.Link(pageItems[i])
	}

	totalPages := (total + limit - 1) / limit
	c.JSON(http.StatusOK, models.ProductListResponse{
		Success: true,
		Data:    pageItems,
		Pagination: &models.PaginationInfo{
			Page:        page,
			Limit:       limit,
			Total:       int64(total),
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	})
}

// GetProduct retrieves a single product by id
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ProductResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	for _, p := range h.catalog.Products() {
		if p.ID == id {
			p.WhatsAppURL = h.inquiry.Link(p)
			c.JSON(http.StatusOK, models.ProductResponse{Success: true, Data: &p})
			return
		}
	}

	respondError(c, http.StatusNotFound, "NOT_FOUND", "Product not found", "")
}

// GetCategories lists the configured category tags
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /categories [get]
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    models.Categories,
	})
}

// GetBrands lists distinct brands in the snapshot, optionally per category
// @Summary List brands
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} models.SuccessResponse
// @Router /brands [get]
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	category := models.Category(c.Query("category"))
	if category != "" && !category.Valid() {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown category", "category")
		return
	}

	seen := make(map[string]bool)
	var brands []string
	for _, p := range h.catalog.Products() {
		if category != "" && p.Category != category {
			continue
		}
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	sort.Strings(brands)

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    brands,
	})
}

// RefreshCatalog triggers a catalog refresh
// @Summary Refresh catalog
// @Description Re-ingest every category sheet. Without force, a snapshot younger than the cache window is kept as-is.
// @Tags catalog
// @Produce json
// @Param force query bool false "Bypass the cache window"
// @Success 200 {object} models.SuccessResponse
// @Router /catalog/refresh [post]
func (h *CatalogHandler) RefreshCatalog(c *gin.Context) {
	force := c.Query("force") == "true"

	refreshed := h.catalog.Refresh(c.Request.Context(), force)
	status := h.catalog.Status()

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data: gin.H{
			"refreshed":     refreshed,
			"productCount":  status.ProductCount,
			"lastFetchedAt": status.LastFetchedAt,
			"isLoading":     status.IsLoading,
		},
	})
}

// GetStatus reports snapshot size and freshness
// @Summary Catalog status
// @Tags catalog
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /catalog/status [get]
func (h *CatalogHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    h.catalog.Status(),
	})
}

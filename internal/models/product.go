package models

import "time"

// Category tags one tab of the published price sheet. The set is closed:
// product ids and the sheet mapping both key off these exact strings.
type Category string

const (
	CategoryCelulares Category = "celulares"
	CategoryCamaras   Category = "cámaras"
	CategoryLentes    Category = "lentes y flashes"
	CategoryTablets   Category = "ipads y tablets"
	CategoryMacbooks  Category = "macbooks e imacs"
	CategoryNotebooks Category = "notebooks"
	CategoryVarios    Category = "varios"
)

// Categories lists every configured category in catalog order. Refresh
// results are concatenated in this order, so it also fixes the default
// ordering of the product list.
var Categories = []Category{
	CategoryCelulares,
	CategoryCamaras,
	CategoryLentes,
	CategoryTablets,
	CategoryMacbooks,
	CategoryNotebooks,
	CategoryVarios,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is one sellable item parsed out of a sheet tab. A product is never
// mutated after ingestion; catalog updates replace whole snapshots.
type Product struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Price    float64  `json:"price"` // markup already applied
	Details  *string  `json:"details"`

	// WhatsAppURL is derived at serve time, never persisted.
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

// CatalogStatus reports the store's freshness to the storefront.
type CatalogStatus struct {
	ProductCount  int        `json:"productCount"`
	LastFetchedAt *time.Time `json:"lastFetchedAt"`
	IsLoading     bool       `json:"isLoading"`
}

type PaginationInfo struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

type ProductResponse struct {
	Success bool     `json:"success"`
	Data    *Product `json:"data"`
	Message *string  `json:"message,omitempty"`
}

type ProductListResponse struct {
	Success    bool            `json:"success"`
	Data       []Product       `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message *string     `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     Error  `json:"error"`
	Timestamp string `json:"timestamp,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

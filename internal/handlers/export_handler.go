package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"catalog-service/internal/models"
)

var exportColumns = []string{"id", "category", "brand", "model", "price", "details"}

// ExportProducts dumps the current catalog snapshot as a spreadsheet
// @Summary Export catalog
// @Tags products
// @Produce octet-stream
// @Param format query string false "Export format" Enums(csv, xlsx)
// @Success 200
// @Router /products/export [get]
func (h *CatalogHandler) ExportProducts(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	switch format {
	case "csv":
		h.exportCSV(c)
	case "xlsx":
		h.exportXLSX(c)
	default:
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unsupported format, use csv or xlsx", "format")
	}
}

func exportRow(p models.Product) []string {
	details := ""
	if p.Details != nil {
		details = *p.Details
	}
	return []string{
		p.ID,
		string(p.Category),
		p.Brand,
		p.Model,
		strconv.FormatFloat(p.Price, 'f', -1, 64),
		details,
	}
}

func (h *CatalogHandler) exportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=catalog.csv")

	writer := csv.NewWriter(c.Writer)
	_ = writer.Write(exportColumns)
	for _, p := range h.catalog.Products() {
		_ = writer.Write(exportRow(p))
	}
	writer.Flush()
}

func (h *CatalogHandler) exportXLSX(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, col)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, p := range h.catalog.Products() {
		row := exportRow(p)
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=catalog.xlsx")

	if err := f.Write(c.Writer); err != nil {
		respondError(c, http.StatusInternalServerError, "EXPORT_FAILED", fmt.Sprintf("Could not write workbook: %v", err), "")
	}
}

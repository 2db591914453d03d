package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"catch-log/internal/models"
	"catch-log/internal/query"
	"catch-log/internal/store"
	"catch-log/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serializes the filtered catch sequence to downloadable
// files. It consumes the same filter params as the list endpoint.
type ExportHandler struct {
	Live *store.LiveQuery
}

func NewExportHandler(live *store.LiveQuery) *ExportHandler {
	return &ExportHandler{Live: live}
}

var exportHeaders = []string{
	"Date", "Time", "Species", "Weight", "Weight Unit",
	"Length", "Length Unit", "Location", "Bait", "Water", "Weather", "Notes",
}

func formatOpt(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func exportRow(c *models.Catch) []string {
	return []string{
		c.Date,
		c.Time,
		c.Species,
		formatOpt(c.Weight),
		c.WeightUnit,
		formatOpt(c.Length),
		c.LengthUnit,
		c.Location,
		c.Bait,
		c.WaterCondition,
		c.Weather,
		c.Notes,
	}
}

func (h *ExportHandler) filtered(c *gin.Context) ([]models.Catch, bool) {
	p, ok := parseFilterParams(c)
	if !ok {
		return nil, false
	}
	if !h.Live.Ready() {
		if err := h.Live.Err(); err != nil {
			util.Error(c, http.StatusServiceUnavailable, util.CodeStorage, "storage unavailable: "+err.Error())
			return nil, false
		}
		return nil, true
	}
	return query.Filter(h.Live.Snapshot(), p), true
}

// ExportCSV streams the filtered catches as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	catches, ok := h.filtered(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"catches-%s.csv\"",
		time.Now().Format("2006-01-02")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM so Excel detects the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write(exportHeaders)
	for i := range catches {
		writer.Write(exportRow(&catches[i]))
	}
}

// ExportXLSX writes the filtered catches as an XLSX workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	catches, ok := h.filtered(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Catches"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, hdr := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, hdr)
	}

	for idx := range catches {
		row := exportRow(&catches[idx])
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, idx+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	f.SetColWidth(sheetName, "A", "B", 11)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "H", "H", 28)
	f.SetColWidth(sheetName, "L", "L", 40)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"catches-%s.xlsx\"",
		time.Now().Format("2006-01-02")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}

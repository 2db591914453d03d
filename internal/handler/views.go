package handler

import (
	"net/http"
	"strconv"
	"time"

	"catch-log/internal/geo"
	"catch-log/internal/models"
	"catch-log/internal/query"
	"catch-log/internal/stats"
	"catch-log/internal/util"

	"github.com/gin-gonic/gin"
)

// snapshot returns the live snapshot, or reports the storage-unavailable
// state. Views read the in-memory snapshot only, never storage mid-request.
func (h *CatchHandler) snapshot(c *gin.Context) ([]models.Catch, bool) {
	if !h.Live.Ready() {
		if err := h.Live.Err(); err != nil {
			util.Error(c, http.StatusServiceUnavailable, util.CodeStorage, "storage unavailable: "+err.Error())
			return nil, false
		}
		// initial load still in flight; an empty log, not an error
		return nil, true
	}
	return h.Live.Snapshot(), true
}

func parseFilterParams(c *gin.Context) (query.Params, bool) {
	p := query.Params{
		Query:    c.Query("query"),
		DateFrom: c.Query("from"),
		DateTo:   c.Query("to"),
	}

	for _, d := range []string{p.DateFrom, p.DateTo} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date filter must be YYYY-MM-DD")
			return query.Params{}, false
		}
	}
	return p, true
}

// ListCatches returns the filtered view of the snapshot, most recent first.
// Pagination happens after filtering; count is the full filtered size.
func (h *CatchHandler) ListCatches(c *gin.Context) {
	p, ok := parseFilterParams(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.PageSize)))
	if size <= 0 || size > 100 {
		size = h.PageSize
	}

	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	filtered := query.Filter(snap, p)
	start := (page - 1) * size
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}

	util.Success(c, util.Response{
		"items": filtered[start:end],
		"count": len(filtered),
		"total": len(snap),
		"page":  page,
		"size":  size,
		"ready": h.Live.Ready(),
	})
}

// GetStats aggregates the full (unfiltered) snapshot. With nothing logged
// yet the reply says so explicitly instead of sending zeros.
func (h *CatchHandler) GetStats(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	summary := stats.Compute(snap)
	if summary == nil {
		util.Success(c, util.Response{
			"available": false,
		})
		return
	}

	util.Success(c, util.Response{
		"available": true,
		"stats":     summary,
	})
}

// GetMapCatches returns the subset with coordinates, ready for markers.
func (h *CatchHandler) GetMapCatches(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	items := geo.WithCoordinates(snap)
	util.Success(c, util.Response{
		"items": items,
		"count": len(items),
	})
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"catch-log/internal/models"
	"catch-log/internal/seed"
	"catch-log/internal/store"
	"catch-log/internal/util"

	"github.com/gin-gonic/gin"
)

// CatchHandler owns the mutation endpoints. Reads go through the live
// query (see views.go); writes go through the store, which republishes.
type CatchHandler struct {
	Store    *store.Store
	Live     *store.LiveQuery
	PageSize int
}

func NewCatchHandler(s *store.Store, live *store.LiveQuery, pageSize int) *CatchHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &CatchHandler{Store: s, Live: live, PageSize: pageSize}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// CreateCatch logs a new catch. The caller sends the full record minus id
// and createdAt; both are assigned here.
func (h *CatchHandler) CreateCatch(c *gin.Context) {
	var req models.Catch
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	saved, err := h.Store.Add(req)
	if err != nil {
		if errors.Is(err, store.ErrEmptySpecies) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "species is required")
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"catch": saved,
	})
}

// GetCatch returns a single record by id.
func (h *CatchHandler) GetCatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := h.Store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "catch not found")
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"catch": rec,
	})
}

// UpdateCatch merges the provided fields into an existing record. Editing a
// record that no longer exists is a failed edit, not a silent success.
func (h *CatchHandler) UpdateCatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.CatchPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if err := h.Store.Update(id, patch); err != nil {
		switch {
		case errors.Is(err, store.ErrEmptySpecies):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "species is required")
		case errors.Is(err, store.ErrNotFound):
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "catch not found")
		default:
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		}
		return
	}

	rec, err := h.Store.Get(id)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"catch": rec,
	})
}

// DeleteCatch removes a record. Deleting an id that is already gone is fine.
func (h *CatchHandler) DeleteCatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Store.Delete(id); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}

// ClearCatches removes every record. Irreversible; the UI confirms first.
func (h *CatchHandler) ClearCatches(c *gin.Context) {
	if err := h.Store.Clear(); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "clear failed")
		return
	}

	util.Success(c, util.Response{
		"message": "cleared",
	})
}

// ImportSample loads the demo dataset in one all-or-nothing batch.
func (h *CatchHandler) ImportSample(c *gin.Context) {
	added, err := h.Store.BulkAdd(seed.SampleCatches())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "import failed")
		return
	}

	util.Success(c, util.Response{
		"imported": len(added),
	})
}

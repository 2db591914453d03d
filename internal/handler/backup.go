package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"catch-log/internal/models"
	"catch-log/internal/store"
	"catch-log/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BackupHandler writes and restores JSON snapshots of the catch collection
// in the local backup directory.
type BackupHandler struct {
	DB        *gorm.DB
	Store     *store.Store
	BackupDir string
}

func NewBackupHandler(db *gorm.DB, s *store.Store, backupDir string) *BackupHandler {
	return &BackupHandler{
		DB:        db,
		Store:     s,
		BackupDir: backupDir,
	}
}

// backupData is the backup file content.
type backupData struct {
	Created time.Time      `json:"created"`
	Catches []models.Catch `json:"catches"`
}

// CreateBackup snapshots every catch into a new backup file.
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	catches, err := h.Store.List()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	data := backupData{
		Created: time.Now(),
		Catches: catches,
	}
	raw, err := json.MarshalIndent(&data, "", "  ")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "serialize failed")
		return
	}

	id := uuid.New().String()
	filename := fmt.Sprintf("catches-%s-%s.json", time.Now().Format("20060102"), id[:8])
	path := filepath.Join(h.BackupDir, filename)

	if err := os.MkdirAll(h.BackupDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create backup dir failed")
		return
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write backup failed")
		return
	}

	rec := models.Backup{
		ID:        id,
		Filename:  filename,
		Catches:   len(catches),
		SizeBytes: int64(len(raw)),
	}
	if err := h.DB.Create(&rec).Error; err != nil {
		_ = os.Remove(path)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "record backup failed")
		return
	}

	util.Success(c, util.Response{
		"backup": rec,
	})
}

// ListBackups returns backup metadata, newest first.
func (h *BackupHandler) ListBackups(c *gin.Context) {
	var backups []models.Backup
	if err := h.DB.Order("created_at DESC").Find(&backups).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"backups": backups,
	})
}

func (h *BackupHandler) findBackup(c *gin.Context) (*models.Backup, bool) {
	var rec models.Backup
	if err := h.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "backup not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return nil, false
	}
	return &rec, true
}

// DownloadBackup serves the backup file.
func (h *BackupHandler) DownloadBackup(c *gin.Context) {
	rec, ok := h.findBackup(c)
	if !ok {
		return
	}

	path := filepath.Join(h.BackupDir, rec.Filename)
	if _, err := os.Stat(path); err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "backup file missing")
		return
	}
	c.FileAttachment(path, rec.Filename)
}

// RestoreBackup replaces all catches with the backup's contents.
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	rec, ok := h.findBackup(c)
	if !ok {
		return
	}

	raw, err := os.ReadFile(filepath.Join(h.BackupDir, rec.Filename))
	if err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "backup file missing")
		return
	}

	var data backupData
	if err := json.Unmarshal(raw, &data); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "backup file corrupt")
		return
	}

	if err := h.Store.Restore(data.Catches); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "restore failed")
		return
	}

	util.Success(c, util.Response{
		"restored": len(data.Catches),
	})
}

// DeleteBackup removes the backup file and its record.
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	rec, ok := h.findBackup(c)
	if !ok {
		return
	}

	_ = os.Remove(filepath.Join(h.BackupDir, rec.Filename))
	if err := h.DB.Delete(&models.Backup{}, "id = ?", rec.ID).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}

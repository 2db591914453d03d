package router

import (
	"catch-log/internal/config"
	"catch-log/internal/handler"
	"catch-log/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the API routes. Recovery keeps
// an unexpected panic from taking the whole app down silently; the client
// gets a visible 500 instead.
func SetupRouter(cfg *config.Config, db *gorm.DB, s *store.Store, live *store.LiveQuery) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// ====== API ======
	api := r.Group("/api")

	catchHandler := handler.NewCatchHandler(s, live, cfg.App.PageSize)
	api.POST("/catches", catchHandler.CreateCatch)
	api.GET("/catches", catchHandler.ListCatches)
	api.GET("/catches/:id", catchHandler.GetCatch)
	api.PUT("/catches/:id", catchHandler.UpdateCatch)
	api.DELETE("/catches/:id", catchHandler.DeleteCatch)
	api.DELETE("/catches", catchHandler.ClearCatches)
	api.POST("/catches/sample", catchHandler.ImportSample)

	api.GET("/stats", catchHandler.GetStats)
	api.GET("/map", catchHandler.GetMapCatches)

	exportHandler := handler.NewExportHandler(live)
	api.GET("/export/csv", exportHandler.ExportCSV)
	api.GET("/export/xlsx", exportHandler.ExportXLSX)

	backupHandler := handler.NewBackupHandler(db, s, cfg.Backup.Dir)
	api.POST("/backups", backupHandler.CreateBackup)
	api.GET("/backups", backupHandler.ListBackups)
	api.GET("/backups/:id/download", backupHandler.DownloadBackup)
	api.POST("/backups/:id/restore", backupHandler.RestoreBackup)
	api.DELETE("/backups/:id", backupHandler.DeleteBackup)

	return r
}

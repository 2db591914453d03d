package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"catch-log/internal/config"
	"catch-log/internal/database"
	"catch-log/internal/router"
	"catch-log/internal/store"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(cfg.Backup.Dir); err != nil {
		log.Fatalf("create backup dir: %v", err)
	}

	// init database; a failure here is the storage-unavailable state and
	// must be loud, not an empty-looking catch log
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database (storage unavailable): %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// the one catch store and its live query
	s, err := store.New(db)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	live := store.OpenLiveQuery(s)
	defer live.Close()

	// setup router
	r := router.SetupRouter(cfg, db, s, live)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("catch log listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

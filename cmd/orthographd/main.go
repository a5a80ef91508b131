package main

import (
	"fmt"
	"log"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/atelierpx/orthograph/internal/archive"
	"github.com/atelierpx/orthograph/internal/config"
	"github.com/atelierpx/orthograph/internal/service"
	"github.com/atelierpx/orthograph/pkg/style"
)

func main() {
	cfg := config.Load()

	store, err := archive.Open(cfg.ArchiveDBPath)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer store.Close()

	styles := style.NewRegistry()
	if cfg.ThemeFile != "" {
		if err := styles.LoadFile(cfg.ThemeFile); err != nil {
			log.Fatalf("load themes: %v", err)
		}
	}

	app := service.New(cfg, store, styles)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Orthograph Render Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

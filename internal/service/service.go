// Package service exposes the projection pipeline over HTTP: single-view
// render endpoints, the full-set bundle endpoint and the project archive.
package service

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/atelierpx/orthograph/internal/archive"
	"github.com/atelierpx/orthograph/internal/config"
	"github.com/atelierpx/orthograph/pkg/style"
)

// New assembles the Fiber app: middleware, health checks and the v1
// render and archive routes.
func New(cfg *config.Config, store *archive.Store, styles *style.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Orthograph Render Service",
	})

	app.Use(recover.New())
	app.Use(Logger())

	h := &handler{store: store, styles: styles}

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	app.Get("/health/ready", h.ready)

	v1 := app.Group("/v1")
	v1.Post("/render/plan", h.renderPlan)
	v1.Post("/render/elevation", h.renderElevation)
	v1.Post("/render/section", h.renderSection)
	v1.Post("/render/all", h.renderAll)
	v1.Get("/projects", h.listProjects)
	v1.Get("/projects/:id", h.getProject)

	return app
}

package service

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/atelierpx/orthograph/internal/archive"
	"github.com/atelierpx/orthograph/pkg/model"
	"github.com/atelierpx/orthograph/pkg/projection"
	"github.com/atelierpx/orthograph/pkg/style"
)

type handler struct {
	store  *archive.Store
	styles *style.Registry
}

func (h *handler) ready(c fiber.Ctx) error {
	if err := h.store.Ping(context.Background()); err != nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

// renderPlan projects one floor of the posted model as SVG.
func (h *handler) renderPlan(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}
	m, err := model.Decode(c.Body())
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid model json"})
	}
	floor, err := queryInt(c, "floor", 0)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "floor must be an integer"})
	}
	scale, err := queryFloat(c, "scale")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "scale must be a number"})
	}

	doc := projection.FloorPlan(m, floor, projection.FloorPlanOptions{
		Scale:  scale,
		Theme:  c.Query("theme"),
		Styles: h.styles,
	})
	c.Type("svg")
	return c.SendString(doc)
}

// renderElevation projects one facade of the posted model as SVG.
func (h *handler) renderElevation(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}
	m, err := model.Decode(c.Body())
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid model json"})
	}
	facade, ok := parseFacade(c.Query("facade", "N"))
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "unknown facade"})
	}
	scale, err := queryFloat(c, "scale")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "scale must be a number"})
	}

	doc := projection.Elevation(m, facade, projection.ElevationOptions{
		Scale:  scale,
		Theme:  c.Query("theme"),
		Styles: h.styles,
	})
	c.Type("svg")
	return c.SendString(doc)
}

// renderSection projects a cutting-plane view of the posted model as SVG.
func (h *handler) renderSection(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}
	m, err := model.Decode(c.Body())
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid model json"})
	}
	axis := projection.SectionAxis(strings.ToLower(c.Query("kind", string(projection.SectionLongitudinal))))
	if !axis.Valid() {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "kind must be longitudinal or transverse"})
	}
	scale, err := queryFloat(c, "scale")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "scale must be a number"})
	}

	doc := projection.Section(m, axis, projection.SectionOptions{
		Scale:  scale,
		Theme:  c.Query("theme"),
		Styles: h.styles,
	})
	c.Type("svg")
	return c.SendString(doc)
}

// renderAll generates the full drawing set and returns it as JSON.
// With ?save=1 the bundle is archived and the response carries projectId.
func (h *handler) renderAll(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}
	m, err := model.Decode(c.Body())
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid model json"})
	}
	scale, err := queryFloat(c, "scale")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "scale must be a number"})
	}
	theme := c.Query("theme")

	bundle := projection.All2D(m, projection.BatchOptions{
		Scale:  scale,
		Theme:  theme,
		Styles: h.styles,
	})

	resp := fiber.Map{
		"documents": bundle.Drawings,
		"metadata":  bundle.Meta,
	}

	if c.Query("save") == "1" {
		if theme == "" {
			theme = style.DefaultName
		}
		if scale <= 0 {
			scale = projection.DefaultScale
		}
		rec := archive.Record{
			DesignID:   bundle.Meta.DesignID,
			Theme:      theme,
			Scale:      scale,
			FloorCount: bundle.Meta.FloorCount,
			Documents:  bundle.Drawings,
			Meta:       bundle.Meta,
		}
		id, err := h.store.Save(context.Background(), &rec)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "archive save failed"})
		}
		resp["projectId"] = id
	}

	return c.JSON(resp)
}

// listProjects returns the archive index, newest first.
func (h *handler) listProjects(c fiber.Ctx) error {
	recs, err := h.store.List(context.Background())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "archive list failed"})
	}
	if recs == nil {
		recs = []archive.Record{}
	}
	return c.JSON(fiber.Map{"projects": recs, "count": len(recs)})
}

// getProject fetches one archived drawing set by project or design id.
func (h *handler) getProject(c fiber.Ctx) error {
	rec, err := h.store.Get(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "project not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "archive get failed"})
	}
	return c.JSON(rec)
}

func parseFacade(s string) (model.Facade, bool) {
	switch strings.ToLower(s) {
	case "n", "north":
		return model.FacadeNorth, true
	case "s", "south":
		return model.FacadeSouth, true
	case "e", "east":
		return model.FacadeEast, true
	case "w", "west":
		return model.FacadeWest, true
	}
	return "", false
}

func queryInt(c fiber.Ctx, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func queryFloat(c fiber.Ctx, key string) (float64, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

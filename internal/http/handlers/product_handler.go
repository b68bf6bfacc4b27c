package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ohioautoparts/internal/catalog"
	"ohioautoparts/internal/log"
	"ohioautoparts/internal/validate"
)

type ProductHandler struct {
	Catalog *catalog.Service
}

// Home renders the storefront shell; the page loads products via the API.
func (h *ProductHandler) Home(c *fiber.Ctx) error {
	page := h.Catalog.Search(c.Context(), catalog.Filter{}, 1, 60)
	return c.Render("home", fiber.Map{
		"Total":    page.Total,
		"Products": page.Items,
	})
}

// List serves GET /api/products with fitment filters, sort, and pagination.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	year := 0
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			log.Security(c, "validation.fail", map[string]any{"field": "year", "value": raw})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year"})
		}
		year = y
	}
	oem := strings.TrimSpace(c.Query("oem"))
	if oem != "" && oem != "oem" && oem != "aftermarket" {
		log.Security(c, "validation.fail", map[string]any{"field": "oem"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid oem filter"})
	}

	f := catalog.Filter{
		Make:  strings.TrimSpace(c.Query("make")),
		Model: strings.TrimSpace(c.Query("model")),
		Year:  year,
		Q:     strings.TrimSpace(c.Query("q")),
		OEM:   oem,
		Sort:  validate.Sort(c.Query("sort", "relevance")),
	}
	page := h.Catalog.Search(c.Context(), f, validate.Page(c.Query("page", "1")), validate.PageSize(c.Query("page_size", "60")))
	return c.JSON(page)
}

// Get serves one product by id.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	p, ok := h.Catalog.Get(c.Context(), id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(p)
}

// Fitment vocabulary for the filter controls.

func (h *ProductHandler) Makes(c *fiber.Ctx) error { return c.JSON(catalog.Makes()) }

func (h *ProductHandler) Models(c *fiber.Ctx) error {
	return c.JSON(catalog.Models(c.Query("make")))
}

func (h *ProductHandler) Years(c *fiber.Ctx) error { return c.JSON(catalog.Years()) }

func (h *ProductHandler) PartTypes(c *fiber.Ctx) error { return c.JSON(catalog.PartTypes()) }

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ohioautoparts/internal/catalog"
	"ohioautoparts/internal/log"
	"ohioautoparts/internal/sourcing"
	"ohioautoparts/internal/validate"
)

type SourcingHandler struct {
	Catalog  *catalog.Service
	Sourcing *sourcing.Client
}

// AttachImage serves POST /api/image/ai: finds a web image for a product
// that has none and persists it on the catalog entry.
func (h *SourcingHandler) AttachImage(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	p, ok := h.Catalog.Get(c.Context(), id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	url := h.Sourcing.FindImageURL(c.Context(), sourcing.PartMeta{
		Make: p.Make, Model: p.Model, Year: p.Year, Part: p.Category, Name: p.Name,
	})
	if err := h.Catalog.UpdateImage(c.Context(), p.ID, url); err != nil {
		log.Error(c, "image.attach.fail", err, map[string]any{"product_id": p.ID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save image"})
	}
	return c.JSON(fiber.Map{"ok": true, "image_url": url})
}

// Cheapest serves POST /api/market/cheapest: builds an ephemeral AI-sourced
// listing priced at cheapest-market + 75% markup.
func (h *SourcingHandler) Cheapest(c *fiber.Ctx) error {
	var req struct {
		Make  string `json:"make"`
		Model string `json:"model"`
		Year  int    `json:"year"`
		Part  string `json:"part"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	listing := h.Sourcing.BuildAIListing(c.Context(), sourcing.PartMeta{
		Make: req.Make, Model: req.Model, Year: req.Year, Part: req.Part,
	})
	return c.JSON(fiber.Map{"product": listing})
}

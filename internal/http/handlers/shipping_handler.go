package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ohioautoparts/internal/catalog"
	"ohioautoparts/internal/domain"
	"ohioautoparts/internal/log"
	"ohioautoparts/internal/shipping"
	"ohioautoparts/internal/validate"
)

type ShippingHandler struct {
	Catalog   *catalog.Service
	Estimator *shipping.Estimator
}

type rateRequest struct {
	Address       domain.Address    `json:"address"`
	Cart          []domain.CartLine `json:"cart"`
	SubtotalCents int64             `json:"subtotal_cents"`
}

type rateResponse struct {
	Quotes   []domain.ShippingQuote `json:"quotes"`
	Computed domain.ParcelInfo      `json:"computed"`
}

// Rates serves POST /api/shipping/rates. Unresolvable cart lines are
// skipped; an empty cart still quotes the minimum parcel.
func (h *ShippingHandler) Rates(c *fiber.Ctx) error {
	var req rateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Security(c, "validation.fail", map[string]any{"field": "body"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	req.Address.Country = validate.Country(req.Address.Country)
	if req.Address.Country == "US" && req.Address.PostalCode != "" {
		zip, ok := validate.ZIP(req.Address.PostalCode)
		if !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "postal_code"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid ZIP code"})
		}
		req.Address.PostalCode = zip
	}

	items := make([]shipping.Item, 0, len(req.Cart))
	for _, line := range req.Cart {
		p, ok := h.Catalog.Get(c.Context(), line.ProductID)
		if !ok {
			continue
		}
		items = append(items, shipping.Item{Part: p, Qty: validate.Qty(line.Qty)})
	}

	quotes, computed := h.Estimator.Quote(c.Context(), items, req.Address, req.SubtotalCents)
	return c.JSON(rateResponse{Quotes: quotes, Computed: computed})
}

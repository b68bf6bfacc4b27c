package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ohioautoparts/internal/log"
	"ohioautoparts/internal/validate"
	"ohioautoparts/internal/vin"
)

type VINHandler struct {
	Decoder *vin.Decoder
}

// Decode serves GET /api/vin/decode?vin=... Decode failures answer 200 with
// ok:false; the storefront shows the message inline.
func (h *VINHandler) Decode(c *fiber.Ctx) error {
	v, ok := validate.VIN(c.Query("vin"))
	if !ok {
		return c.JSON(fiber.Map{"ok": false, "error": "VIN must be 17 characters."})
	}
	meta, err := h.Decoder.Decode(c.Context(), v)
	if err != nil {
		log.Error(c, "vin.decode.fail", err, map[string]any{"vin": v})
		return c.JSON(fiber.Map{"ok": false, "error": "VIN decode failed."})
	}
	return c.JSON(fiber.Map{
		"ok":    true,
		"vin":   v,
		"make":  meta.Make,
		"model": meta.Model,
		"year":  meta.Year,
	})
}

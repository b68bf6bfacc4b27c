package handlers

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	applog "ohioautoparts/internal/log"
	"ohioautoparts/internal/repos"
)

type AdminHandler struct {
	Orders       *repos.OrderRepo
	PasswordHash []byte
}

// RequireAdmin gates admin routes behind HTTP basic auth checked against the
// bcrypt hash of the configured admin password.
func (h *AdminHandler) RequireAdmin(c *fiber.Ctx) error {
	auth := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Basic ") {
		c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="admin"`)
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	user, pass, found := strings.Cut(string(raw), ":")
	if !found || user != "admin" || bcrypt.CompareHashAndPassword(h.PasswordHash, []byte(pass)) != nil {
		applog.Security(c, "admin.auth.fail", nil)
		c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="admin"`)
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	return c.Next()
}

// OrdersList serves GET /admin/orders.
func (h *AdminHandler) OrdersList(c *fiber.Ctx) error {
	orders, err := h.Orders.List(c.Context())
	if err != nil {
		applog.Error(c, "admin.orders.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load orders"})
	}
	return c.JSON(fiber.Map{"orders": orders})
}

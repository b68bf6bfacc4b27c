package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"ohioautoparts/internal/domain"
	"ohioautoparts/internal/dropship"
	applog "ohioautoparts/internal/log"
	"ohioautoparts/internal/payments"
	"ohioautoparts/internal/repos"
)

type PaymentHandler struct {
	Payments *payments.Service
	Orders   *repos.OrderRepo
	Dropship *dropship.Forwarder
	PubKey   string
}

// Config exposes the publishable key the payment element needs.
func (h *PaymentHandler) Config(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"publishableKey": h.PubKey})
}

// CreateIntent serves POST /create-payment-intent.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req payments.IntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	out, err := h.Payments.CreateIntent(c.Context(), req)
	if err != nil {
		applog.Error(c, "payment.intent.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}

// Webhook serves POST /webhook. A succeeded payment intent persists an order
// and kicks off dropship forwarding in the background.
func (h *PaymentHandler) Webhook(c *fiber.Ctx) error {
	payload := c.Body()
	event, err := h.Payments.ParseEvent(payload, c.Get("Stripe-Signature"))
	if err != nil {
		applog.Security(c, "webhook.verify.fail", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).SendString("Webhook Error: " + err.Error())
	}

	if event.Type == "payment_intent.succeeded" && event.Data != nil {
		order, err := payments.OrderFromIntent(event.Data.Raw)
		if err != nil {
			applog.Error(c, "webhook.order.parse", err, nil)
			return c.Status(fiber.StatusBadRequest).SendString("Webhook Error: " + err.Error())
		}
		if err := h.Orders.Save(c.Context(), order); err != nil {
			applog.Error(c, "webhook.order.save", err, map[string]any{"order_id": order.ID})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not record order"})
		}
		applog.Audit(c, "order.paid", map[string]any{
			"order_id": order.ID, "stripe_pi": order.StripePI, "amount_cents": order.AmountCents,
		})

		// Best-effort; the webhook response never waits on the 3PL.
		go func(o domain.Order) {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()
			if err := h.Dropship.Process(ctx, o); err != nil {
				applog.Warn("dropship.fail", err, map[string]any{"order_id": o.ID})
			}
		}(order)
	}
	return c.JSON(fiber.Map{"received": true})
}

package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"ohioautoparts/internal/config"
	"ohioautoparts/internal/http/handlers"
	applog "ohioautoparts/internal/log"
	"ohioautoparts/internal/repos"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if strings.HasPrefix(c.Path(), "/api") {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Something went wrong. Please try again.",
				})
			}
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
	}))

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	deps := handlers.NewDeps(db, cfg)

	// Storefront
	app.Get("/", deps.ProductHandler.Home)
	app.Get("/config", deps.PaymentHandler.Config)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	// Catalog
	api := app.Group("/api")
	api.Get("/makes", deps.ProductHandler.Makes)
	api.Get("/models", deps.ProductHandler.Models)
	api.Get("/years", deps.ProductHandler.Years)
	api.Get("/parts", deps.ProductHandler.PartTypes)
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)

	// VIN decode proxies a public API; throttle it
	api.Get("/vin/decode", limiter.New(limiter.Config{
		Max:        15,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|vin"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.vin.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}), deps.VINHandler.Decode)

	// Shipping
	api.Post("/shipping/rates", deps.ShippingHandler.Rates)

	// AI sourcing (throttled: each call can fan out to paid APIs)
	sourcingLimiter := limiter.New(limiter.Config{Max: 20, Expiration: time.Minute})
	api.Post("/image/ai", sourcingLimiter, deps.SourcingHandler.AttachImage)
	api.Post("/market/cheapest", sourcingLimiter, deps.SourcingHandler.Cheapest)

	// Payments
	app.Post("/create-payment-intent", deps.PaymentHandler.CreateIntent)
	app.Post("/webhook", deps.PaymentHandler.Webhook)

	// Admin
	admin := app.Group("/admin", deps.AdminHandler.RequireAdmin)
	admin.Get("/orders", deps.AdminHandler.OrdersList)

	// 404
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}

package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"ohioautoparts/internal/config"
	"ohioautoparts/internal/http/handlers"
	"ohioautoparts/internal/repos"
)

// Minimal app wired like main, feeds and live rating disabled.
func newStoreApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	cfg := config.Config{
		DBDSN:             ":memory:",
		CatalogTTL:        time.Minute,
		AdminPassword:     "secret",
		StripePublishable: "pk_test_x",
	}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, cfg)
	app.Get("/", deps.ProductHandler.Home)
	app.Get("/config", deps.PaymentHandler.Config)
	api := app.Group("/api")
	api.Get("/makes", deps.ProductHandler.Makes)
	api.Get("/models", deps.ProductHandler.Models)
	api.Get("/years", deps.ProductHandler.Years)
	api.Get("/parts", deps.ProductHandler.PartTypes)
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Get("/vin/decode", deps.VINHandler.Decode)
	api.Post("/shipping/rates", deps.ShippingHandler.Rates)
	app.Post("/webhook", deps.PaymentHandler.Webhook)
	admin := app.Group("/admin", deps.AdminHandler.RequireAdmin)
	admin.Get("/orders", deps.AdminHandler.OrdersList)

	return app, db
}

func getJSON(t *testing.T, app *fiber.App, url string, out any) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", url, nil), 5000)
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("decode %s: %v: %s", url, err, body)
		}
	}
	return resp
}

type productPage struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Items    []struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		Make           string `json:"make"`
		Year           int    `json:"year"`
		OEM            bool   `json:"oem"`
		BasePriceCents int64  `json:"base_price_cents"`
	} `json:"items"`
}

func TestProductsAPIPagination(t *testing.T) {
	app, _ := newStoreApp(t)

	var page productPage
	resp := getJSON(t, app, "/api/products", &page)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if page.Total != 500 || len(page.Items) != 60 {
		t.Fatalf("total=%d items=%d, want 500/60", page.Total, len(page.Items))
	}

	// size is capped, page past the end is empty but keeps the total
	getJSON(t, app, "/api/products?page_size=9999", &page)
	if page.PageSize != 120 || len(page.Items) != 120 {
		t.Fatalf("page_size=%d items=%d, want capped at 120", page.PageSize, len(page.Items))
	}
	getJSON(t, app, "/api/products?page=99", &page)
	if page.Total != 500 || len(page.Items) != 0 {
		t.Fatalf("past-end page: total=%d items=%d", page.Total, len(page.Items))
	}
}

func TestProductsAPIFilters(t *testing.T) {
	app, _ := newStoreApp(t)

	var page productPage
	getJSON(t, app, "/api/products?oem=oem&page_size=120", &page)
	for _, it := range page.Items {
		if !it.OEM {
			t.Fatalf("oem filter leaked %+v", it)
		}
	}

	getJSON(t, app, "/api/products?sort=price_asc&page_size=120", &page)
	for i := 1; i < len(page.Items); i++ {
		if page.Items[i-1].BasePriceCents > page.Items[i].BasePriceCents {
			t.Fatal("price_asc not sorted")
		}
	}
}

func TestProductsAPIBadInputs(t *testing.T) {
	app, _ := newStoreApp(t)

	resp := getJSON(t, app, "/api/products?year=banana", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad year: status %d, want 400", resp.StatusCode)
	}
	resp = getJSON(t, app, "/api/products?oem=maybe", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad oem: status %d, want 400", resp.StatusCode)
	}
}

func TestProductByID(t *testing.T) {
	app, db := newStoreApp(t)

	var id string
	if err := db.Get(&id, `SELECT id FROM parts LIMIT 1`); err != nil {
		t.Fatal(err)
	}

	var got struct {
		ID string `json:"id"`
	}
	resp := getJSON(t, app, "/api/products/"+id, &got)
	if resp.StatusCode != http.StatusOK || got.ID != id {
		t.Fatalf("status %d id %q", resp.StatusCode, got.ID)
	}

	resp = getJSON(t, app, "/api/products/no-such-part", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown id: status %d, want 404", resp.StatusCode)
	}
}

func TestFitmentVocabulary(t *testing.T) {
	app, _ := newStoreApp(t)

	var makes []string
	getJSON(t, app, "/api/makes", &makes)
	if len(makes) == 0 {
		t.Fatal("no makes")
	}

	var models []string
	getJSON(t, app, "/api/models?make="+url.QueryEscape(makes[0]), &models)
	if len(models) == 0 {
		t.Fatalf("no models for %s", makes[0])
	}
	// unknown make answers an empty list, not null
	resp := getJSON(t, app, "/api/models?make=NotAMake", nil)
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "[]" {
		t.Fatalf("unknown make = %s, want []", body)
	}

	var years []int
	getJSON(t, app, "/api/years", &years)
	if len(years) == 0 || years[0] < years[len(years)-1] {
		t.Fatalf("years = %v, want newest first", years)
	}
}

func TestHomeRendersStorefront(t *testing.T) {
	app, _ := newStoreApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), 5000)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if len(body) == 0 {
		t.Fatal("empty page")
	}
}

func TestPublishableKeyConfig(t *testing.T) {
	app, _ := newStoreApp(t)
	var got struct {
		PublishableKey string `json:"publishableKey"`
	}
	getJSON(t, app, "/config", &got)
	if got.PublishableKey != "pk_test_x" {
		t.Fatalf("got %q", got.PublishableKey)
	}
}

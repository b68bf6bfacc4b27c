package dropship

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ohioautoparts/internal/domain"
	"ohioautoparts/internal/sourcing"
)

type catalogStub map[string]domain.Part

func (c catalogStub) Get(ctx context.Context, id string) (domain.Part, bool) {
	p, ok := c[id]
	return p, ok
}

func testOrder() domain.Order {
	return domain.Order{
		ID:          "ord-1",
		StripePI:    "pi_123",
		AmountCents: 26653,
		Currency:    "usd",
		Email:       "alice@example.com",
		Name:        "Alice",
		AddressJSON: `{"city":"Columbus","state":"OH"}`,
		ItemsJSON:   `[{"id":"p1","name":"Front Bumper","qty":1,"unit_price_cents":22000},{"id":"ai-xyz","name":"Radiator","qty":1,"unit_price_cents":2900}]`,
	}
}

func TestProcessSkipsWithoutURL(t *testing.T) {
	f := NewForwarder("", "", catalogStub{}, sourcing.NewClient("", ""))
	if err := f.Process(context.Background(), testOrder()); err != nil {
		t.Fatalf("skip should not error: %v", err)
	}
}

func TestProcessPostsPurchaseOrders(t *testing.T) {
	var gotAuth string
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Error(err)
		}
		w.Write([]byte(`{"accepted":true}`))
	}))
	defer srv.Close()

	cat := catalogStub{"p1": {ID: "p1", Name: "Front Bumper", Make: "Honda", Model: "Civic", Year: 2018, Category: "body"}}
	f := NewForwarder(srv.URL, "secret-key", cat, sourcing.NewClient("", ""))
	f.HTTP = srv.Client()

	if err := f.Process(context.Background(), testOrder()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if got.OrderID != "ord-1" || got.StripePI != "pi_123" || got.AmountCents != 26653 {
		t.Errorf("envelope = %+v", got)
	}
	if got.Customer.Name != "Alice" || got.Customer.Email != "alice@example.com" {
		t.Errorf("customer = %+v", got.Customer)
	}
	if len(got.POs) != 2 {
		t.Fatalf("got %d purchase orders, want one per line item", len(got.POs))
	}
	// no live market credentials: supplier stays unknown, no suggested cost
	for _, po := range got.POs {
		if po.Supplier.Name != "Unknown" {
			t.Errorf("supplier = %+v", po.Supplier)
		}
		if po.SuggestedCost != nil {
			t.Errorf("suggested_cost = %v, want null", *po.SuggestedCost)
		}
	}
	if got.POs[0].LineItem.SKU != "p1" || got.POs[0].LineItem.UnitPriceCents != 22000 {
		t.Errorf("line item = %+v", got.POs[0].LineItem)
	}
	// ai- listing is not in the catalog; the id passes through as the SKU
	if got.POs[1].LineItem.SKU != "ai-xyz" {
		t.Errorf("ai line item = %+v", got.POs[1].LineItem)
	}
}

func TestProcessSupplierFromMarket(t *testing.T) {
	serp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"shopping_results":[{"price":"$88.00","title":"Bumper","link":"https://shop/a"}]}`))
	}))
	defer serp.Close()

	var got payload
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	defer sink.Close()

	src := sourcing.NewClient("serp-key", "")
	src.SerpBaseURL = serp.URL
	src.HTTP = serp.Client()

	f := NewForwarder(sink.URL, "", catalogStub{}, src)
	f.HTTP = sink.Client()

	order := testOrder()
	order.ItemsJSON = `[{"id":"p1","name":"Front Bumper","qty":1,"unit_price_cents":22000}]`
	if err := f.Process(context.Background(), order); err != nil {
		t.Fatal(err)
	}
	po := got.POs[0]
	if po.Supplier.Name != "Google Shopping" || po.Supplier.URL != "https://shop/a" {
		t.Errorf("supplier = %+v", po.Supplier)
	}
	if po.SuggestedCost == nil || *po.SuggestedCost != 88 {
		t.Errorf("suggested_cost = %v", po.SuggestedCost)
	}
}

func TestProcessBadItemsJSON(t *testing.T) {
	f := NewForwarder("http://localhost:0", "", catalogStub{}, sourcing.NewClient("", ""))
	order := testOrder()
	order.ItemsJSON = `{not json`
	if err := f.Process(context.Background(), order); err == nil {
		t.Fatal("expected error for malformed items")
	}
}

package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type rateResp struct {
	Quotes []struct {
		Carrier     string `json:"carrier"`
		Service     string `json:"service"`
		Days        *int   `json:"days"`
		AmountCents int64  `json:"amount_cents"`
	} `json:"quotes"`
	Computed struct {
		BillableLb float64    `json:"billable_lb"`
		Dims       [3]float64 `json:"dims"`
		WeightLb   float64    `json:"weight_lb"`
	} `json:"computed"`
}

func postRates(t *testing.T, body string) rateResp {
	t.Helper()
	app, db := newStoreApp(t)

	var id string
	if err := db.Get(&id, `SELECT id FROM parts LIMIT 1`); err != nil {
		t.Fatal(err)
	}
	body = strings.ReplaceAll(body, "{{ID}}", id)

	req := httptest.NewRequest("POST", "/api/shipping/rates", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status %d: %s", resp.StatusCode, raw)
	}
	var out rateResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestShippingRates(t *testing.T) {
	out := postRates(t, `{
		"address": {"line1":"1 Main St","city":"Minneapolis","state":"MN","postal_code":"55414","country":"us","residential":true},
		"cart": [{"id":"{{ID}}","qty":2},{"id":"gone-forever","qty":1}],
		"subtotal_cents": 5000
	}`)

	if len(out.Quotes) != 5 {
		t.Fatalf("got %d quotes, want 5 domestic services", len(out.Quotes))
	}
	for i := 1; i < len(out.Quotes); i++ {
		if out.Quotes[i-1].AmountCents > out.Quotes[i].AmountCents {
			t.Fatal("quotes not ascending")
		}
	}
	if out.Computed.BillableLb <= 0 || out.Computed.WeightLb <= 0 {
		t.Fatalf("computed = %+v", out.Computed)
	}
	for _, q := range out.Quotes {
		if q.AmountCents < 1 || q.Carrier == "" || q.Service == "" {
			t.Fatalf("bad quote %+v", q)
		}
	}
}

func TestShippingRatesInternational(t *testing.T) {
	out := postRates(t, `{
		"address": {"country":"CA"},
		"cart": [{"id":"{{ID}}","qty":1}],
		"subtotal_cents": 10000
	}`)
	if len(out.Quotes) != 3 {
		t.Fatalf("got %d quotes, want 3 international services", len(out.Quotes))
	}
}

func TestShippingRatesEmptyCart(t *testing.T) {
	out := postRates(t, `{"address":{},"cart":[],"subtotal_cents":0}`)
	if len(out.Quotes) == 0 {
		t.Fatal("empty cart should still quote the minimum parcel")
	}
	if out.Computed.WeightLb != 2 {
		t.Fatalf("weight = %v, want minimum 2", out.Computed.WeightLb)
	}
}

func TestShippingRatesRejectsBadZIP(t *testing.T) {
	app, _ := newStoreApp(t)
	req := httptest.NewRequest("POST", "/api/shipping/rates",
		strings.NewReader(`{"address":{"postal_code":"5541x","country":"US"},"cart":[],"subtotal_cents":0}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

func TestShippingRatesBadBody(t *testing.T) {
	app, _ := newStoreApp(t)
	req := httptest.NewRequest("POST", "/api/shipping/rates", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

// Package dropship forwards paid orders as purchase orders to an external
// 3PL/ERP webhook, one supplier suggestion per line item. Best effort: a
// missing webhook URL disables the feature, failures are logged only.
package dropship

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ohioautoparts/internal/domain"
	applog "ohioautoparts/internal/log"
	"ohioautoparts/internal/sourcing"
)

type Catalog interface {
	Get(ctx context.Context, id string) (domain.Part, bool)
}

type orderItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Qty            int    `json:"qty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type lineItem struct {
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Qty            int    `json:"qty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type supplier struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type purchaseOrder struct {
	LineItem      lineItem        `json:"line_item"`
	Supplier      supplier        `json:"supplier"`
	SuggestedCost *float64        `json:"suggested_cost"`
	ShipTo        json.RawMessage `json:"ship_to"`
}

type payload struct {
	OrderID     string          `json:"order_id"`
	StripePI    string          `json:"stripe_pi"`
	AmountCents int64           `json:"amount_cents"`
	Currency    string          `json:"currency"`
	Customer    customerInfo    `json:"customer"`
	POs         []purchaseOrder `json:"purchase_orders"`
}

type customerInfo struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Address json.RawMessage `json:"address"`
}

type Forwarder struct {
	WebhookURL string
	APIKey     string
	Catalog    Catalog
	Sourcing   *sourcing.Client
	HTTP       *http.Client
}

func NewForwarder(webhookURL, apiKey string, cat Catalog, src *sourcing.Client) *Forwarder {
	return &Forwarder{
		WebhookURL: webhookURL,
		APIKey:     apiKey,
		Catalog:    cat,
		Sourcing:   src,
		HTTP:       &http.Client{Timeout: 15 * time.Second},
	}
}

// Process builds and posts purchase orders for a paid order.
func (f *Forwarder) Process(ctx context.Context, order domain.Order) error {
	if f.WebhookURL == "" {
		applog.Op("dropship.skip", map[string]any{"reason": "no webhook url", "order_id": order.ID})
		return nil
	}

	var items []orderItem
	if err := json.Unmarshal([]byte(order.ItemsJSON), &items); err != nil {
		return fmt.Errorf("dropship: order %s items: %w", order.ID, err)
	}

	shipTo := json.RawMessage(order.AddressJSON)
	if len(shipTo) == 0 {
		shipTo = json.RawMessage("null")
	}

	pos := make([]purchaseOrder, 0, len(items))
	for _, it := range items {
		var meta sourcing.PartMeta
		sku := it.ID
		if p, ok := f.Catalog.Get(ctx, it.ID); ok {
			sku = p.ID
			meta = sourcing.PartMeta{Make: p.Make, Model: p.Model, Year: p.Year, Part: p.Category, Name: p.Name}
		} else {
			// ai- listings and stale ids: re-search by name only
			meta = sourcing.PartMeta{Name: it.Name}
		}
		offer := f.Sourcing.SupplierLink(ctx, meta)

		po := purchaseOrder{
			LineItem: lineItem{SKU: sku, Name: it.Name, Qty: it.Qty, UnitPriceCents: it.UnitPriceCents},
			Supplier: supplier{Name: "Unknown"},
			ShipTo:   shipTo,
		}
		if offer != nil {
			po.Supplier = supplier{Name: offer.Source, URL: offer.Link}
			cost := offer.Price
			po.SuggestedCost = &cost
		}
		pos = append(pos, po)
	}

	body, err := json.Marshal(payload{
		OrderID:     order.ID,
		StripePI:    order.StripePI,
		AmountCents: order.AmountCents,
		Currency:    order.Currency,
		Customer:    customerInfo{Name: order.Name, Email: order.Email, Address: shipTo},
		POs:         pos,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
	applog.Op("dropship.webhook", map[string]any{
		"order_id": order.ID, "status": resp.StatusCode, "response": string(respBody),
	})
	return nil
}

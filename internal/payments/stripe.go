// Package payments owns the Stripe integration: payment-intent creation with
// server-side price resolution, and webhook event parsing.
package payments

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	"ohioautoparts/internal/domain"
)

// fallbackAmountCents keeps the demo payment element mountable when the cart
// resolves to nothing.
const fallbackAmountCents = 4900

// Catalog resolves cart lines to authoritative prices.
type Catalog interface {
	Get(ctx context.Context, id string) (domain.Part, bool)
}

type SelectedRate struct {
	Carrier     string `json:"carrier"`
	Service     string `json:"service"`
	Days        *int   `json:"days"`
	AmountCents int64  `json:"amount_cents"`
}

type IntentRequest struct {
	Cart     []domain.CartLine `json:"cart"`
	Currency string            `json:"currency"`
	Email    string            `json:"email"`
	Shipping *SelectedRate     `json:"shipping"`
}

type IntentResponse struct {
	ClientSecret  string `json:"clientSecret"`
	AmountCents   int64  `json:"amount"`
	SubtotalCents int64  `json:"subtotal"`
	ShippingCents int64  `json:"shipping_cents"`
}

type compactItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Qty            int    `json:"qty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type Service struct {
	API           *client.API
	WebhookSecret string
	Catalog       Catalog
}

func New(secretKey, webhookSecret string, cat Catalog) *Service {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Service{API: api, WebhookSecret: webhookSecret, Catalog: cat}
}

// CreateIntent prices the cart server-side (ai- listings keep the client
// price; unresolvable lines with no price are skipped) and creates a
// payment intent carrying a compact item manifest in metadata.
func (s *Service) CreateIntent(ctx context.Context, req IntentRequest) (IntentResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	var subtotal int64
	compact := make([]compactItem, 0, len(req.Cart))
	for _, line := range req.Cart {
		qty := line.Qty
		if qty < 1 {
			qty = 1
		}
		unit := line.PriceCents
		if !strings.HasPrefix(line.ProductID, "ai-") {
			if p, ok := s.Catalog.Get(ctx, line.ProductID); ok {
				unit = p.BasePriceCents
			}
		}
		if unit <= 0 {
			continue
		}
		subtotal += unit * int64(qty)
		compact = append(compact, compactItem{ID: line.ProductID, Name: line.Name, Qty: qty, UnitPriceCents: unit})
	}
	if subtotal <= 0 {
		subtotal = fallbackAmountCents
	}

	var shippingCents int64
	if req.Shipping != nil && req.Shipping.AmountCents > 0 {
		shippingCents = req.Shipping.AmountCents
	}
	amount := subtotal + shippingCents

	if len(compact) > 20 {
		compact = compact[:20]
	}
	itemsJSON, _ := json.Marshal(compact)
	shippingJSON := []byte("{}")
	if req.Shipping != nil {
		shippingJSON, _ = json.Marshal(req.Shipping)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}
	params.AddMetadata("items", string(itemsJSON))
	params.AddMetadata("shipping", string(shippingJSON))

	pi, err := s.API.PaymentIntents.New(params)
	if err != nil {
		return IntentResponse{}, err
	}
	return IntentResponse{
		ClientSecret:  pi.ClientSecret,
		AmountCents:   amount,
		SubtotalCents: subtotal,
		ShippingCents: shippingCents,
	}, nil
}

// ParseEvent verifies and decodes a webhook payload. Without a configured
// signing secret the payload is trusted as-is (local/dev mode).
func (s *Service) ParseEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	if s.WebhookSecret != "" {
		return webhook.ConstructEvent(payload, sigHeader, s.WebhookSecret)
	}
	var event stripe.Event
	err := json.Unmarshal(payload, &event)
	return event, err
}

// intentPayload is the slice of a payment_intent object the order builder
// needs; parsed from the raw event rather than the SDK type so that the
// legacy expanded-charges shape keeps working.
type intentPayload struct {
	ID             string            `json:"id"`
	Amount         int64             `json:"amount"`
	AmountReceived int64             `json:"amount_received"`
	Currency       string            `json:"currency"`
	ReceiptEmail   string            `json:"receipt_email"`
	Metadata       map[string]string `json:"metadata"`
	Charges        struct {
		Data []struct {
			BillingDetails struct {
				Email   string          `json:"email"`
				Name    string          `json:"name"`
				Address json.RawMessage `json:"address"`
			} `json:"billing_details"`
		} `json:"data"`
	} `json:"charges"`
}

// OrderFromIntent builds the persisted order for a succeeded payment intent.
func OrderFromIntent(raw json.RawMessage) (domain.Order, error) {
	var pi intentPayload
	if err := json.Unmarshal(raw, &pi); err != nil {
		return domain.Order{}, err
	}
	amount := pi.AmountReceived
	if amount == 0 {
		amount = pi.Amount
	}

	o := domain.Order{
		ID:           uuid.NewString(),
		StripePI:     pi.ID,
		AmountCents:  amount,
		Currency:     pi.Currency,
		Email:        pi.ReceiptEmail,
		AddressJSON:  "null",
		ItemsJSON:    "[]",
		ShippingJSON: "null",
		Status:       "paid",
	}
	if len(pi.Charges.Data) > 0 {
		bd := pi.Charges.Data[0].BillingDetails
		if bd.Email != "" {
			o.Email = bd.Email
		}
		o.Name = bd.Name
		if len(bd.Address) > 0 {
			o.AddressJSON = string(bd.Address)
		}
	}
	if items, ok := pi.Metadata["items"]; ok && items != "" {
		o.ItemsJSON = items
	}
	if shipping, ok := pi.Metadata["shipping"]; ok && shipping != "" {
		o.ShippingJSON = shipping
	}
	return o, nil
}

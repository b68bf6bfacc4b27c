package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"time"

	"ohioautoparts/internal/domain"
)

const easyPostShipments = "https://api.easypost.com/v2/shipments"

// Carriers we surface from live rating; everything else is dropped.
var carrierAllowList = map[string]string{
	"UPS":           "UPS",
	"FedEx":         "FedEx",
	"DHLExpress":    "DHL",
	"USPS":          "USPS",
	"DHL eCommerce": "DHL eCommerce",
}

// FromAddress is the warehouse origin on every live shipment.
type FromAddress struct {
	Name    string
	Street1 string
	City    string
	State   string
	ZIP     string
	Country string
	Phone   string
	Email   string
}

// EasyPost fetches live rates by creating a throwaway shipment. One attempt,
// bounded timeout; callers fall back on any error.
type EasyPost struct {
	APIKey  string
	From    FromAddress
	BaseURL string // overridable for tests
	Client  *http.Client
}

func NewEasyPost(apiKey string, from FromAddress) *EasyPost {
	return &EasyPost{
		APIKey:  apiKey,
		From:    from,
		BaseURL: easyPostShipments,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type epAddress struct {
	Name        string `json:"name"`
	Street1     string `json:"street1"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZIP         string `json:"zip"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Residential bool   `json:"residential,omitempty"`
}

type epParcel struct {
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	WeightOz float64 `json:"weight"`
}

type epRate struct {
	Carrier      string `json:"carrier"`
	Service      string `json:"service"`
	DeliveryDays *int   `json:"delivery_days"`
	Rate         string `json:"rate"`
}

func ozFromLb(lb float64) float64 {
	return math.Max(1, math.Round(lb*16))
}

func roundDim(in float64) float64 {
	return math.Max(1, math.Round(in))
}

func (c *EasyPost) Rates(ctx context.Context, to domain.Address, parcel Parcel) ([]domain.ShippingQuote, error) {
	name := to.Name
	if name == "" {
		name = "Customer"
	}
	phone := "0000000000"
	email := to.Email
	if email == "" {
		email = "customer@example.com"
	}
	country := to.Country
	if country == "" {
		country = "US"
	}

	payload := map[string]any{
		"shipment": map[string]any{
			"to_address": epAddress{
				Name: name, Street1: to.Line1, Street2: to.Line2,
				City: to.City, State: to.State, ZIP: to.PostalCode,
				Country: country, Phone: phone, Email: email,
				Residential: to.Residential,
			},
			"from_address": epAddress{
				Name: c.From.Name, Street1: c.From.Street1, City: c.From.City,
				State: c.From.State, ZIP: c.From.ZIP, Country: c.From.Country,
				Phone: c.From.Phone, Email: c.From.Email,
			},
			"parcel": epParcel{
				Length:   roundDim(parcel.LIn),
				Width:    roundDim(parcel.WIn),
				Height:   roundDim(parcel.HIn),
				WeightOz: ozFromLb(parcel.WeightLb),
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.APIKey, "")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return nil, fmt.Errorf("easypost: HTTP %d: %s", resp.StatusCode, msg)
	}

	var out struct {
		Rates []epRate `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("easypost: invalid response: %w", err)
	}

	var quotes []domain.ShippingQuote
	for _, r := range out.Rates {
		carrier, ok := carrierAllowList[r.Carrier]
		if !ok {
			continue
		}
		var dollars float64
		if _, err := fmt.Sscanf(r.Rate, "%f", &dollars); err != nil {
			continue
		}
		quotes = append(quotes, domain.ShippingQuote{
			Carrier:     carrier,
			Service:     r.Service,
			Days:        r.DeliveryDays,
			AmountCents: int64(math.Round(dollars * 100)),
		})
	}
	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].AmountCents < quotes[j].AmountCents })
	if len(quotes) > 6 {
		quotes = quotes[:6]
	}
	return quotes, nil
}

package domain

// Part is the canonical catalog entry every upstream shape normalizes into.
type Part struct {
	ID             string  `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	Make           string  `db:"make" json:"make"`
	Model          string  `db:"model" json:"model"`
	Year           int     `db:"year" json:"year"`
	Category       string  `db:"category" json:"category"` // body | mechanical
	BasePriceCents int64   `db:"base_price_cents" json:"base_price_cents"`
	Stock          int     `db:"stock" json:"stock"`
	ImageURL       string  `db:"image_url" json:"image_url"`
	WeightLb       float64 `db:"weight_lb" json:"weight_lb"`
	DimLIn         float64 `db:"dim_l_in" json:"dim_l_in"`
	DimWIn         float64 `db:"dim_w_in" json:"dim_w_in"`
	DimHIn         float64 `db:"dim_h_in" json:"dim_h_in"`
	OEM            bool    `db:"oem" json:"oem"`
}

// CartLine is a client-built cart entry; ids that no longer resolve against
// the catalog are skipped by consumers.
type CartLine struct {
	ProductID  string `json:"id"`
	Qty        int    `json:"qty"`
	Name       string `json:"name,omitempty"`
	PriceCents int64  `json:"price_cents,omitempty"` // trusted only for ai- listings
}

// Address is a shipping destination.
type Address struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"` // ISO-2, defaults to US
	Residential bool   `json:"residential"`
}

type ShippingQuote struct {
	Carrier     string `json:"carrier"`
	Service     string `json:"service"`
	Days        *int   `json:"days"`
	AmountCents int64  `json:"amount_cents"`
}

// ParcelInfo echoes back how the quoted parcel was computed.
type ParcelInfo struct {
	BillableLb float64    `json:"billable_lb"`
	Dims       [3]float64 `json:"dims"`
	WeightLb   float64    `json:"weight_lb"`
}

type Order struct {
	ID           string `db:"id" json:"id"`
	StripePI     string `db:"stripe_pi" json:"stripe_pi"`
	AmountCents  int64  `db:"amount_cents" json:"amount_cents"`
	Currency     string `db:"currency" json:"currency"`
	Email        string `db:"email" json:"email"`
	Name         string `db:"name" json:"name"`
	AddressJSON  string `db:"address_json" json:"address_json"`
	ItemsJSON    string `db:"items_json" json:"items_json"`
	ShippingJSON string `db:"shipping_json" json:"shipping_json"`
	Status       string `db:"status" json:"status"`
	CreatedAt    string `db:"created_at" json:"created_at"`
}

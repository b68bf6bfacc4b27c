package shipping

import (
	"context"
	"math"
	"sort"

	"ohioautoparts/internal/domain"
	applog "ohioautoparts/internal/log"
)

// Item is a cart line resolved against the catalog.
type Item struct {
	Part domain.Part
	Qty  int
}

// Parcel is the aggregate box a cart ships in.
type Parcel struct {
	LIn, WIn, HIn float64
	WeightLb      float64
}

// Tariff carries the heuristic pricing constants. The defaults mirror the
// carrier rate cards the shop launched with; everything is linear in
// billable weight.
type Tariff struct {
	DimDivisor float64 // dimensional-weight divisor (in³ per lb)
	Fuel       float64 // multiplicative uplift applied after additive fees

	GroundBase, GroundPerLb       float64
	TwoDayBase, TwoDayPerLb       float64
	OvernightBase, OvernightPerLb float64
	IntlBase, IntlPerLb           float64

	ResidentialFee float64
	RemoteFee      float64
	InsuranceRate  float64
	InsuranceMin   float64
	InsuranceMax   float64

	IntlZoneMult float64
}

func DefaultTariff() Tariff {
	return Tariff{
		DimDivisor:     139,
		Fuel:           0.12,
		GroundBase:     8, GroundPerLb: 0.55,
		TwoDayBase:     15, TwoDayPerLb: 0.95,
		OvernightBase:  24, OvernightPerLb: 1.45,
		IntlBase:       32, IntlPerLb: 1.65,
		ResidentialFee: 4.0,
		RemoteFee:      8.0,
		InsuranceRate:  0.01,
		InsuranceMin:   1.0,
		InsuranceMax:   50.0,
		IntlZoneMult:   1.65,
	}
}

// Domestic zone multipliers indexed by the first postal-code digit.
var zoneByDigit = map[byte]float64{
	'0': 1.00, '1': 0.95, '2': 0.98, '3': 1.05, '4': 1.10,
	'5': 1.15, '6': 1.20, '7': 1.25, '8': 1.28, '9': 1.32,
}

const zoneDefault = 1.15

// Countries billed a remote-area fee on international lanes.
var remoteCountries = map[string]bool{
	"AU": true, "NZ": true, "ZA": true, "BR": true, "AR": true, "CL": true,
	"AE": true, "SA": true, "IN": true, "ID": true, "PH": true, "CN": true,
	"JP": true, "KR": true,
}

// BuildParcel aggregates cart lines into one box: weights sum, length and
// width take the max, heights stack per unit. Minimum weight is 2 lb.
func BuildParcel(items []Item) Parcel {
	var p Parcel
	for _, it := range items {
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		p.WeightLb += it.Part.WeightLb * float64(qty)
		p.LIn = math.Max(p.LIn, it.Part.DimLIn)
		p.WIn = math.Max(p.WIn, it.Part.DimWIn)
		p.HIn += it.Part.DimHIn * float64(qty)
	}
	if p.WeightLb <= 0 {
		p.WeightLb = 2
	}
	return p
}

// BillableWeight is the max of actual and dimensional weight.
func (t Tariff) BillableWeight(p Parcel) float64 {
	return math.Max(p.WeightLb, p.LIn*p.WIn*p.HIn/t.DimDivisor)
}

func (t Tariff) zoneMultiplier(addr domain.Address) float64 {
	if addr.Country != "US" {
		return t.IntlZoneMult
	}
	if addr.PostalCode == "" {
		return zoneDefault
	}
	if m, ok := zoneByDigit[addr.PostalCode[0]]; ok {
		return m
	}
	return zoneDefault
}

func toCents(amount float64) int64 {
	c := int64(math.Round(amount * 100))
	if c < 1 {
		c = 1
	}
	return c
}

func days(n int) *int { return &n }

// HeuristicQuotes prices a fixed candidate service set for the destination:
// per service, (base × zone + residential + remote + insurance) × (1 + fuel),
// rounded to cents, sorted cheapest first.
func HeuristicQuotes(t Tariff, parcel Parcel, addr domain.Address, subtotalCents int64) []domain.ShippingQuote {
	billable := t.BillableWeight(parcel)
	domestic := addr.Country == "US"
	zone := t.zoneMultiplier(addr)

	var residential, remote float64
	if addr.Residential {
		residential = t.ResidentialFee
	}
	if !domestic && remoteCountries[addr.Country] {
		remote = t.RemoteFee
	}
	insurance := t.InsuranceRate * float64(subtotalCents) / 100
	insurance = math.Min(t.InsuranceMax, math.Max(t.InsuranceMin, insurance))

	quote := func(carrier, service string, d *int, base float64) domain.ShippingQuote {
		amount := base*zone + residential + remote + insurance
		amount *= 1 + t.Fuel
		return domain.ShippingQuote{Carrier: carrier, Service: service, Days: d, AmountCents: toCents(amount)}
	}

	var out []domain.ShippingQuote
	if domestic {
		ground := t.GroundBase + t.GroundPerLb*billable
		twoDay := t.TwoDayBase + t.TwoDayPerLb*billable
		overnight := t.OvernightBase + t.OvernightPerLb*billable
		out = []domain.ShippingQuote{
			quote("UPS", "Ground", days(3), ground),
			quote("UPS", "2nd Day Air", days(2), twoDay),
			quote("FedEx", "Ground", days(3), ground*0.98),
			quote("FedEx", "2Day", days(2), twoDay*0.99),
			quote("FedEx", "Standard Overnight", days(1), overnight),
		}
	} else {
		intl := t.IntlBase + t.IntlPerLb*billable
		out = []domain.ShippingQuote{
			quote("DHL", "Express Worldwide", days(4), intl),
			quote("UPS", "Worldwide Saver", days(5), intl*1.05),
			quote("FedEx", "International Priority", days(4), intl*1.03),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AmountCents < out[j].AmountCents })
	return out
}

// RateFetcher is a live carrier-rating backend.
type RateFetcher interface {
	Rates(ctx context.Context, to domain.Address, parcel Parcel) ([]domain.ShippingQuote, error)
}

// Estimator produces ranked quotes: live rates when configured and the
// address is complete enough for a live call, heuristic pricing otherwise.
type Estimator struct {
	Tariff Tariff
	Live   RateFetcher // nil when no rating credential is configured
}

func NewEstimator(live RateFetcher) *Estimator {
	return &Estimator{Tariff: DefaultTariff(), Live: live}
}

func liveAddressable(a domain.Address) bool {
	return a.Line1 != "" && a.City != "" && a.State != "" && a.PostalCode != ""
}

// Quote never fails: any live-path error degrades silently to the heuristic,
// and an empty cart still prices the minimum-weight parcel.
func (e *Estimator) Quote(ctx context.Context, items []Item, addr domain.Address, subtotalCents int64) ([]domain.ShippingQuote, domain.ParcelInfo) {
	if addr.Country == "" {
		addr.Country = "US"
	}
	parcel := BuildParcel(items)
	info := domain.ParcelInfo{
		BillableLb: math.Round(e.Tariff.BillableWeight(parcel)*10) / 10,
		Dims:       [3]float64{parcel.LIn, parcel.WIn, parcel.HIn},
		WeightLb:   parcel.WeightLb,
	}

	if e.Live != nil && liveAddressable(addr) {
		quotes, err := e.Live.Rates(ctx, addr, parcel)
		if err == nil && len(quotes) > 0 {
			return quotes, info
		}
		if err != nil {
			applog.Warn("shipping.live.fail", err, map[string]any{"country": addr.Country})
		}
	}
	return HeuristicQuotes(e.Tariff, parcel, addr, subtotalCents), info
}

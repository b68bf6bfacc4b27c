package catalog

import (
	"fmt"
	"hash/fnv"
	"math"
	"regexp"
	"strconv"
	"strings"

	"ohioautoparts/internal/domain"
)

// Placeholder shipping attributes for records whose feed omits them.
const (
	DefaultWeightLb = 2.0
	DefaultDimLIn   = 10.0
	DefaultDimWIn   = 8.0
	DefaultDimHIn   = 4.0
)

// Body-panel vocabulary used when a feed supplies no category.
var bodyKeywords = regexp.MustCompile(`(?i)bumper|fender|hood|grille|mirror|door|tail|headlight|taillight|quarter|panel`)

// SourceHints let a feed reader impose defaults on every record it yields,
// e.g. a body-panels-only supplier forcing category=body.
type SourceHints struct {
	Category string
}

// Field fallback chains, in documented precedence order. Kept as explicit
// ordered lists so the precedence is visible and testable.
var (
	idChain    = []string{"id", "partId", "partID", "sku", "partNumber"}
	nameChain  = []string{"name", "title", "description"}
	imageChain = []string{"image", "imageUrl", "img", "thumbnail"}
	priceChain = []string{"base_price", "price", "cost", "unitPrice"}
)

func firstString(raw map[string]any, keys []string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s := asString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		if x == math.Trunc(x) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	}
	return ""
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	f, ok := asFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func asBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(x))
		return b
	case float64:
		return x != 0
	}
	return false
}

// priceCents walks the price chain (plus the nested pricing.price shape some
// feeds use) and coerces dollars to cents; non-numeric or missing yields 0.
func priceCents(raw map[string]any) int64 {
	for _, k := range priceChain {
		if v, ok := raw[k]; ok {
			if f, ok := asFloat(v); ok {
				return dollarsToCents(f)
			}
		}
	}
	if p, ok := raw["pricing"].(map[string]any); ok {
		if f, ok := asFloat(p["price"]); ok {
			return dollarsToCents(f)
		}
	}
	return 0
}

func dollarsToCents(f float64) int64 {
	if f <= 0 {
		return 0
	}
	return int64(math.Round(f * 100))
}

// fallbackID derives a stable identifier from record content so that the
// same record seen on two fetches dedupes to one entry. The upstream demo
// generated a random id here, which broke merge determinism across refreshes.
func fallbackID(name, make, model string, year int) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%d", strings.ToLower(name), strings.ToLower(make), strings.ToLower(model), year)
	return fmt.Sprintf("item-%x", h.Sum64())
}

// InferCategory applies the body-panel keyword heuristic to a part name.
func InferCategory(name string) string {
	if bodyKeywords.MatchString(name) {
		return "body"
	}
	return "mechanical"
}

// NormalizeRecord maps one loosely-typed upstream record into a canonical
// Part. Pure; all fields optional on input.
func NormalizeRecord(raw map[string]any, hints SourceHints) domain.Part {
	veh, _ := raw["vehicle"].(map[string]any)

	name := firstString(raw, nameChain)
	if name == "" {
		name = "Auto Part"
	}

	year := 0
	if y, ok := asInt(raw["year"]); ok {
		year = y
	} else if veh != nil {
		if y, ok := asInt(veh["year"]); ok {
			year = y
		}
	}
	mk := firstString(raw, []string{"make"})
	if mk == "" && veh != nil {
		mk = asString(veh["make"])
	}
	model := firstString(raw, []string{"model"})
	if model == "" && veh != nil {
		model = asString(veh["model"])
	}

	category := asString(raw["category"])
	if category == "" {
		category = hints.Category
	}
	if category == "" {
		category = InferCategory(name)
	}

	id := firstString(raw, idChain)
	if id == "" {
		id = fallbackID(name, mk, model, year)
	}

	p := domain.Part{
		ID:             id,
		Name:           name,
		Make:           mk,
		Model:          model,
		Year:           year,
		Category:       category,
		BasePriceCents: priceCents(raw),
		ImageURL:       firstString(raw, imageChain),
		WeightLb:       DefaultWeightLb,
		DimLIn:         DefaultDimLIn,
		DimWIn:         DefaultDimWIn,
		DimHIn:         DefaultDimHIn,
		OEM:            asBool(raw["oem"]),
	}
	if w, ok := asFloat(raw["weight_lb"]); ok && w > 0 {
		p.WeightLb = w
	}
	if l, ok := asFloat(raw["dim_l_in"]); ok && l > 0 {
		p.DimLIn = l
	}
	if w, ok := asFloat(raw["dim_w_in"]); ok && w > 0 {
		p.DimWIn = w
	}
	if h, ok := asFloat(raw["dim_h_in"]); ok && h > 0 {
		p.DimHIn = h
	}
	if s, ok := asInt(raw["stock"]); ok && s > 0 {
		p.Stock = s
	}
	return p
}

// NormalizeFeed accepts a decoded feed payload shaped as a bare array, or an
// object carrying a parts, results, or data array (checked in that order).
// Anything else yields an empty list. Every element passes through
// NormalizeRecord.
func NormalizeFeed(payload any, hints SourceHints) []domain.Part {
	arr, ok := payload.([]any)
	if !ok {
		obj, isObj := payload.(map[string]any)
		if !isObj {
			return nil
		}
		for _, key := range []string{"parts", "results", "data"} {
			if a, found := obj[key].([]any); found {
				arr = a
				ok = true
				break
			}
		}
		if !ok {
			return nil
		}
	}
	out := make([]domain.Part, 0, len(arr))
	for _, el := range arr {
		raw, _ := el.(map[string]any)
		if raw == nil {
			raw = map[string]any{}
		}
		out = append(out, NormalizeRecord(raw, hints))
	}
	return out
}

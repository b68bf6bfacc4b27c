package catalog

import (
	"sort"
	"strings"

	"ohioautoparts/internal/domain"
)

// Filter narrows and orders a merged catalog. Zero values mean "all".
type Filter struct {
	Make  string
	Model string
	Year  int
	Q     string // substring of name or category, lowercased
	OEM   string // "", "oem", "aftermarket"
	Sort  string // relevance | price_asc | price_desc | year_asc | year_desc
}

// Page is the shape catalog queries paginate into.
type Page struct {
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Items    []domain.Part `json:"items"`
}

func (f Filter) Apply(parts []domain.Part) []domain.Part {
	q := strings.ToLower(f.Q)
	out := make([]domain.Part, 0, len(parts))
	for _, p := range parts {
		if f.Make != "" && p.Make != f.Make {
			continue
		}
		if f.Model != "" && p.Model != f.Model {
			continue
		}
		if f.Year != 0 && p.Year != f.Year {
			continue
		}
		if f.OEM == "oem" && !p.OEM {
			continue
		}
		if f.OEM == "aftermarket" && p.OEM {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		out = append(out, p)
	}
	switch f.Sort {
	case "price_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].BasePriceCents < out[j].BasePriceCents })
	case "price_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].BasePriceCents > out[j].BasePriceCents })
	case "year_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	case "year_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	}
	return out
}

// Paginate slices a filtered list into the {total, page, pageSize, items}
// response shape.
func Paginate(parts []domain.Part, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 60
	}
	start := (page - 1) * pageSize
	if start > len(parts) {
		start = len(parts)
	}
	end := start + pageSize
	if end > len(parts) {
		end = len(parts)
	}
	return Page{Total: len(parts), Page: page, PageSize: pageSize, Items: parts[start:end]}
}

package catalog

import (
	"testing"

	"ohioautoparts/internal/domain"
)

func fixtureParts() []domain.Part {
	return []domain.Part{
		{ID: "a", Name: "Front Bumper", Make: "Honda", Model: "Civic", Year: 2018, Category: "body", BasePriceCents: 22000, OEM: true},
		{ID: "b", Name: "Alternator", Make: "Honda", Model: "Accord", Year: 2016, Category: "mechanical", BasePriceCents: 14500},
		{ID: "c", Name: "Radiator", Make: "Toyota", Model: "Camry", Year: 2018, Category: "mechanical", BasePriceCents: 9900, OEM: true},
		{ID: "d", Name: "Rear Bumper", Make: "Honda", Model: "Civic", Year: 2020, Category: "body", BasePriceCents: 19900},
	}
}

func ids(parts []domain.Part) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.ID
	}
	return out
}

func TestFilterFitment(t *testing.T) {
	out := Filter{Make: "Honda", Model: "Civic"}.Apply(fixtureParts())
	if len(out) != 2 {
		t.Fatalf("got %v", ids(out))
	}
	out = Filter{Make: "Honda", Model: "Civic", Year: 2020}.Apply(fixtureParts())
	if len(out) != 1 || out[0].ID != "d" {
		t.Fatalf("got %v", ids(out))
	}
}

func TestFilterOEMAndQuery(t *testing.T) {
	if out := (Filter{OEM: "oem"}).Apply(fixtureParts()); len(out) != 2 {
		t.Errorf("oem filter: got %v", ids(out))
	}
	if out := (Filter{OEM: "aftermarket"}).Apply(fixtureParts()); len(out) != 2 {
		t.Errorf("aftermarket filter: got %v", ids(out))
	}
	// matches name or category, case-insensitive
	if out := (Filter{Q: "BUMPER"}).Apply(fixtureParts()); len(out) != 2 {
		t.Errorf("q=bumper: got %v", ids(out))
	}
	if out := (Filter{Q: "mechanical"}).Apply(fixtureParts()); len(out) != 2 {
		t.Errorf("q=mechanical: got %v", ids(out))
	}
}

func TestFilterSort(t *testing.T) {
	out := Filter{Sort: "price_asc"}.Apply(fixtureParts())
	for i := 1; i < len(out); i++ {
		if out[i-1].BasePriceCents > out[i].BasePriceCents {
			t.Fatalf("price_asc not sorted: %v", ids(out))
		}
	}
	out = Filter{Sort: "year_desc"}.Apply(fixtureParts())
	if out[0].Year != 2020 {
		t.Fatalf("year_desc: got %v", ids(out))
	}
	// unknown sort keeps input order
	out = Filter{Sort: "relevance"}.Apply(fixtureParts())
	if out[0].ID != "a" {
		t.Fatalf("relevance should keep order: %v", ids(out))
	}
}

func TestPaginate(t *testing.T) {
	parts := fixtureParts()

	page := Paginate(parts, 1, 3)
	if page.Total != 4 || len(page.Items) != 3 {
		t.Fatalf("page 1: %+v", page)
	}
	page = Paginate(parts, 2, 3)
	if len(page.Items) != 1 || page.Items[0].ID != "d" {
		t.Fatalf("page 2: got %v", ids(page.Items))
	}
	// past the end: empty items, total preserved
	page = Paginate(parts, 9, 3)
	if page.Total != 4 || len(page.Items) != 0 {
		t.Fatalf("page 9: %+v", page)
	}
	// nonsense inputs clamp to defaults
	page = Paginate(parts, 0, 0)
	if page.Page != 1 || page.PageSize != 60 || len(page.Items) != 4 {
		t.Fatalf("clamped: %+v", page)
	}
}

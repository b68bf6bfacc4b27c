package catalog

import "ohioautoparts/internal/domain"

// Merge deduplicates parts by id across lists. A later occurrence of an id
// patches the stored record, with three exceptions that keep the old value
// when the new one is unset: ImageURL and Category (empty) and
// BasePriceCents (zero). Records with an empty id are dropped. Output keeps
// the insertion order of each id's first occurrence.
func Merge(lists ...[]domain.Part) []domain.Part {
	index := make(map[string]int)
	var out []domain.Part
	for _, list := range lists {
		for _, p := range list {
			if p.ID == "" {
				continue
			}
			i, seen := index[p.ID]
			if !seen {
				index[p.ID] = len(out)
				out = append(out, p)
				continue
			}
			old := out[i]
			if p.ImageURL == "" {
				p.ImageURL = old.ImageURL
			}
			if p.Category == "" {
				p.Category = old.Category
			}
			if p.Category == "" {
				p.Category = "mechanical"
			}
			if p.BasePriceCents == 0 {
				p.BasePriceCents = old.BasePriceCents
			}
			out[i] = p
		}
	}
	return out
}

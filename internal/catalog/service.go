package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"ohioautoparts/internal/domain"
	applog "ohioautoparts/internal/log"
)

// LocalStore is the locally-owned slice of the catalog (the seeded DB).
type LocalStore interface {
	ListParts(ctx context.Context) ([]domain.Part, error)
	UpdateImage(ctx context.Context, id, url string) error
}

// Service assembles the catalog: remote feeds merged over the local store,
// with the bundled default catalog as the last-resort tier. Results sit in a
// single-slot TTL cache; concurrent refreshes collapse into one upstream
// round via singleflight.
type Service struct {
	Sources []Source // merged in order; later entries patch earlier ones
	Local   LocalStore
	TTL     time.Duration

	mu       sync.RWMutex
	items    []domain.Part
	loadedAt time.Time

	group singleflight.Group
}

func NewService(local LocalStore, ttl time.Duration, sources ...Source) *Service {
	return &Service{Sources: sources, Local: local, TTL: ttl}
}

// Products returns the merged catalog, refreshing it when the cache has
// expired. Refresh failures degrade per source; the call itself never fails.
func (s *Service) Products(ctx context.Context) []domain.Part {
	s.mu.RLock()
	if s.items != nil && time.Since(s.loadedAt) < s.TTL {
		items := s.items
		s.mu.RUnlock()
		return items
	}
	s.mu.RUnlock()

	v, _, _ := s.group.Do("catalog", func() (any, error) {
		items := s.build(ctx)
		s.mu.Lock()
		s.items = items
		s.loadedAt = time.Now()
		s.mu.Unlock()
		return items, nil
	})
	return v.([]domain.Part)
}

// build fetches every source concurrently; a failed or slow source
// contributes an empty list rather than aborting the catalog.
func (s *Service) build(ctx context.Context) []domain.Part {
	lists := make([][]domain.Part, len(s.Sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.Sources {
		i, src := i, src
		g.Go(func() error {
			parts, err := src.Fetch(gctx)
			if err != nil {
				applog.Warn("catalog.feed.fail", err, map[string]any{"source": src.Name()})
				return nil
			}
			lists[i] = parts
			return nil
		})
	}
	_ = g.Wait()

	var local []domain.Part
	if s.Local != nil {
		var err error
		local, err = s.Local.ListParts(ctx)
		if err != nil {
			applog.Warn("catalog.local.fail", err, nil)
			local = nil
		}
	}
	if len(local) == 0 {
		local = DefaultCatalog()
	}
	return Merge(append(lists, local)...)
}

// Get resolves one part by id from the current catalog.
func (s *Service) Get(ctx context.Context, id string) (domain.Part, bool) {
	for _, p := range s.Products(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Part{}, false
}

// Search applies filter, sort, and pagination over the merged catalog.
func (s *Service) Search(ctx context.Context, f Filter, page, pageSize int) Page {
	return Paginate(f.Apply(s.Products(ctx)), page, pageSize)
}

// UpdateImage persists an enriched image URL and patches the cache so the
// next request sees it without a refresh. Products hands out the cached
// slice unlocked, so the patch rebuilds it and swaps the pointer rather
// than writing into the published backing array.
func (s *Service) UpdateImage(ctx context.Context, id, url string) error {
	if s.Local != nil {
		if err := s.Local.UpdateImage(ctx, id, url); err != nil {
			return err
		}
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			patched := make([]domain.Part, len(s.items))
			copy(patched, s.items)
			patched[i].ImageURL = url
			s.items = patched
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Invalidate drops the cached catalog; the next Products call rebuilds it.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.items = nil
	s.loadedAt = time.Time{}
	s.mu.Unlock()
}

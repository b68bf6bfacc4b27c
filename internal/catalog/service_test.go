package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ohioautoparts/internal/domain"
)

type stubSource struct {
	name    string
	parts   []domain.Part
	err     error
	calls   int32
	started chan struct{} // closed once on first fetch, when non-nil
	gate    chan struct{} // fetch blocks until closed, when non-nil
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) ([]domain.Part, error) {
	if atomic.AddInt32(&s.calls, 1) == 1 && s.started != nil {
		close(s.started)
	}
	if s.gate != nil {
		<-s.gate
	}
	return s.parts, s.err
}

type stubLocal struct {
	parts []domain.Part
	err   error
}

func (s *stubLocal) ListParts(ctx context.Context) ([]domain.Part, error) { return s.parts, s.err }
func (s *stubLocal) UpdateImage(ctx context.Context, id, url string) error {
	for i := range s.parts {
		if s.parts[i].ID == id {
			s.parts[i].ImageURL = url
		}
	}
	return nil
}

func TestProductsCachesWithinTTL(t *testing.T) {
	src := &stubSource{name: "feed", parts: []domain.Part{{ID: "p1", Name: "Fender"}}}
	svc := NewService(&stubLocal{}, time.Minute, src)

	ctx := context.Background()
	svc.Products(ctx)
	svc.Products(ctx)
	if n := atomic.LoadInt32(&src.calls); n != 1 {
		t.Fatalf("fetched %d times within TTL, want 1", n)
	}

	svc.Invalidate()
	svc.Products(ctx)
	if n := atomic.LoadInt32(&src.calls); n != 2 {
		t.Fatalf("fetched %d times after invalidate, want 2", n)
	}
}

func TestFailingSourceDegrades(t *testing.T) {
	bad := &stubSource{name: "down", err: errors.New("HTTP 503")}
	good := &stubSource{name: "up", parts: []domain.Part{{ID: "p1", Name: "Hood"}}}
	svc := NewService(&stubLocal{parts: []domain.Part{{ID: "p2", Name: "Radiator"}}}, time.Minute, bad, good)

	items := svc.Products(context.Background())
	if len(items) != 2 {
		t.Fatalf("got %d items, want feed + local: %+v", len(items), items)
	}
}

func TestEmptyTiersFallBackToBundledCatalog(t *testing.T) {
	svc := NewService(&stubLocal{}, time.Minute)
	items := svc.Products(context.Background())
	if len(items) != len(DefaultCatalog()) {
		t.Fatalf("got %d items, want bundled catalog", len(items))
	}
	if _, ok := svc.Get(context.Background(), "front-bumper"); !ok {
		t.Error("bundled catalog missing front-bumper")
	}
}

func TestLocalStoreErrorDegrades(t *testing.T) {
	svc := NewService(&stubLocal{err: errors.New("db closed")}, time.Minute)
	if items := svc.Products(context.Background()); len(items) != len(DefaultCatalog()) {
		t.Fatalf("got %d items, want bundled catalog fallback", len(items))
	}
}

func TestConcurrentRefreshCollapses(t *testing.T) {
	src := &stubSource{
		name:    "slow",
		parts:   []domain.Part{{ID: "p1"}},
		started: make(chan struct{}),
		gate:    make(chan struct{}),
	}
	svc := NewService(&stubLocal{}, time.Minute, src)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		svc.Products(context.Background())
	}()
	<-src.started

	// Everyone arriving while the refresh is in flight joins it.
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Products(context.Background())
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(src.gate)
	wg.Wait()

	if n := atomic.LoadInt32(&src.calls); n != 1 {
		t.Fatalf("refresh ran %d times, want 1", n)
	}
}

func TestUpdateImagePatchesCache(t *testing.T) {
	local := &stubLocal{parts: []domain.Part{{ID: "p1", Name: "Grille"}}}
	svc := NewService(local, time.Minute)
	ctx := context.Background()
	svc.Products(ctx)

	if err := svc.UpdateImage(ctx, "p1", "https://img/x.jpg"); err != nil {
		t.Fatal(err)
	}
	p, ok := svc.Get(ctx, "p1")
	if !ok || p.ImageURL != "https://img/x.jpg" {
		t.Fatalf("cached entry not patched: %+v", p)
	}
	if local.parts[0].ImageURL != "https://img/x.jpg" {
		t.Error("image not persisted to the local store")
	}
}

func TestUpdateImageLeavesPublishedSliceAlone(t *testing.T) {
	local := &stubLocal{parts: []domain.Part{{ID: "p1", Name: "Grille"}, {ID: "p2", Name: "Hood"}}}
	svc := NewService(local, time.Minute)
	ctx := context.Background()

	before := svc.Products(ctx)

	var wg sync.WaitGroup
	done := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			for _, p := range before {
				_ = p.ImageURL
			}
		}
	}()
	for i := 0; i < 50; i++ {
		if err := svc.UpdateImage(ctx, "p1", "https://img/x.jpg"); err != nil {
			t.Fatal(err)
		}
	}
	close(done)
	wg.Wait()

	// callers holding the old slice keep the snapshot they were handed
	if before[0].ImageURL != "" {
		t.Errorf("published slice mutated: %+v", before[0])
	}
	if p, _ := svc.Get(ctx, "p1"); p.ImageURL != "https://img/x.jpg" {
		t.Errorf("cache not patched: %+v", p)
	}
}

func TestSearchPaginatesMergedCatalog(t *testing.T) {
	svc := NewService(&stubLocal{}, time.Minute)
	page := svc.Search(context.Background(), Filter{Q: "bumper"}, 1, 10)
	if page.Total == 0 {
		t.Fatal("bundled catalog should match bumper")
	}
	for _, p := range page.Items {
		if InferCategory(p.Name) != "body" {
			t.Errorf("unexpected match %q", p.Name)
		}
	}
}

package usecase

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cartwise/backend/internal/domain"
)

// mockCategoryAPI is a mock implementation of domain.CategoryAPI
type mockCategoryAPI struct {
	page      *domain.CategoryPage
	err       error
	pageCalls atomic.Int32
	idCalls   atomic.Int32
	release   chan struct{} // when set, GetCategories blocks until it is closed
}

func (m *mockCategoryAPI) GetCategories(ctx context.Context, pageSize int) (*domain.CategoryPage, error) {
	m.pageCalls.Add(1)
	if m.release != nil {
		select {
		case <-m.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func (m *mockCategoryAPI) GetCategoryByID(ctx context.Context, id string) (*domain.RemoteCategory, error) {
	m.idCalls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	if m.page == nil {
		return nil, domain.ErrCategoryNotFound
	}
	for _, c := range m.page.Categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// mockCategoryCache is a mock implementation of domain.CategoryCache
type mockCategoryCache struct {
	mu     sync.Mutex
	data   map[string]domain.RemoteCategory
	order  []string
	setErr error
}

func newMockCategoryCache() *mockCategoryCache {
	return &mockCategoryCache{data: make(map[string]domain.RemoteCategory)}
}

func (m *mockCategoryCache) Get(ctx context.Context, key string) (domain.RemoteCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return domain.RemoteCategory{}, domain.ErrCacheMiss
}

func (m *mockCategoryCache) Set(ctx context.Context, key string, value domain.RemoteCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	if _, ok := m.data[key]; !ok {
		m.order = append(m.order, key)
	}
	m.data[key] = value
	return nil
}

func (m *mockCategoryCache) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func (m *mockCategoryCache) Values(ctx context.Context) []domain.RemoteCategory {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.RemoteCategory
	for _, k := range m.order {
		if v, ok := m.data[k]; ok {
			out = append(out, v)
		}
	}
	return out
}

func samplePage() *domain.CategoryPage {
	return &domain.CategoryPage{
		Categories: []domain.RemoteCategory{
			{ID: "pcmcat1", Name: "Drones & Accessories", Active: true},
			{ID: "pcmcat2", Name: "Drone Batteries", Active: true},
			{ID: "pcmcat3", Name: "Turntables", Active: true},
			{ID: "pcmcat4", Name: "Record Players", Active: false},
		},
		Total:       4,
		CurrentPage: 1,
		TotalPages:  1,
	}
}

func TestNewCategoryLookupService(t *testing.T) {
	svc := NewCategoryLookupService(&mockCategoryAPI{}, newMockCategoryCache(), CategoryLookupConfig{})
	if svc.pageSize != 100 {
		t.Errorf("pageSize = %d, want 100 (default)", svc.pageSize)
	}

	svc = NewCategoryLookupService(&mockCategoryAPI{}, newMockCategoryCache(), CategoryLookupConfig{PageSize: 25})
	if svc.pageSize != 25 {
		t.Errorf("pageSize = %d, want 25", svc.pageSize)
	}
}

func TestSearchCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("returns case-insensitive name matches and caches them", func(t *testing.T) {
		api := &mockCategoryAPI{page: samplePage()}
		cache := newMockCategoryCache()
		svc := NewCategoryLookupService(api, cache, CategoryLookupConfig{})

		got := svc.SearchCategories(ctx, "DRONE")
		if len(got) != 2 || got[0].ID != "pcmcat1" || got[1].ID != "pcmcat2" {
			t.Fatalf("SearchCategories = %+v, want pcmcat1 and pcmcat2", got)
		}

		if _, err := cache.Get(ctx, "drones accessories"); err != nil {
			t.Errorf("expected %q cached: %v", "drones accessories", err)
		}
		if _, err := cache.Get(ctx, "drone batteries"); err != nil {
			t.Errorf("expected %q cached: %v", "drone batteries", err)
		}
		if _, err := cache.Get(ctx, "turntables"); err == nil {
			t.Errorf("non-matching category should not be cached")
		}
	})

	t.Run("cache hit skips the remote call", func(t *testing.T) {
		api := &mockCategoryAPI{page: samplePage()}
		cache := newMockCategoryCache()
		_ = cache.Set(ctx, "turntables", domain.RemoteCategory{ID: "cached", Name: "Turntables"})
		svc := NewCategoryLookupService(api, cache, CategoryLookupConfig{})

		got := svc.SearchCategories(ctx, "  Turntables! ")
		if len(got) != 1 || got[0].ID != "cached" {
			t.Fatalf("SearchCategories = %+v, want the cached record only", got)
		}
		if n := api.pageCalls.Load(); n != 0 {
			t.Errorf("remote calls = %d, want 0", n)
		}
	})

	t.Run("remote failure returns nil", func(t *testing.T) {
		api := &mockCategoryAPI{err: errors.New("connection refused")}
		svc := NewCategoryLookupService(api, newMockCategoryCache(), CategoryLookupConfig{})

		if got := svc.SearchCategories(ctx, "drone"); got != nil {
			t.Errorf("SearchCategories = %+v, want nil", got)
		}
	})

	t.Run("nil page returns nil", func(t *testing.T) {
		svc := NewCategoryLookupService(&mockCategoryAPI{}, newMockCategoryCache(), CategoryLookupConfig{})

		if got := svc.SearchCategories(ctx, "drone"); got != nil {
			t.Errorf("SearchCategories = %+v, want nil", got)
		}
	})

	t.Run("blank query never calls the API", func(t *testing.T) {
		api := &mockCategoryAPI{page: samplePage()}
		svc := NewCategoryLookupService(api, newMockCategoryCache(), CategoryLookupConfig{})

		for _, q := range []string{"", "   ", "!!"} {
			if got := svc.SearchCategories(ctx, q); got != nil {
				t.Errorf("SearchCategories(%q) = %+v, want nil", q, got)
			}
		}
		if n := api.pageCalls.Load(); n != 0 {
			t.Errorf("remote calls = %d, want 0", n)
		}
	})

	t.Run("cache write failure still returns results", func(t *testing.T) {
		cache := newMockCategoryCache()
		cache.setErr = errors.New("cache full")
		svc := NewCategoryLookupService(&mockCategoryAPI{page: samplePage()}, cache, CategoryLookupConfig{})

		if got := svc.SearchCategories(ctx, "turntable"); len(got) != 1 {
			t.Errorf("len = %d, want 1", len(got))
		}
	})

	t.Run("concurrent identical searches share one fetch", func(t *testing.T) {
		api := &mockCategoryAPI{page: samplePage(), release: make(chan struct{})}
		svc := NewCategoryLookupService(api, newMockCategoryCache(), CategoryLookupConfig{})

		const callers = 5
		var started, done sync.WaitGroup
		results := make([][]domain.RemoteCategory, callers)
		for i := range callers {
			started.Add(1)
			done.Add(1)
			go func() {
				defer done.Done()
				started.Done()
				results[i] = svc.SearchCategories(ctx, "drone")
			}()
		}

		started.Wait()
		time.Sleep(50 * time.Millisecond)
		close(api.release)
		done.Wait()

		if n := api.pageCalls.Load(); n != 1 {
			t.Errorf("remote calls = %d, want 1", n)
		}
		for i, r := range results {
			if len(r) != 2 {
				t.Errorf("caller %d got %d results, want 2", i, len(r))
			}
		}
	})
}

func TestCachedCount(t *testing.T) {
	svc := NewCategoryLookupService(&mockCategoryAPI{page: samplePage()}, newMockCategoryCache(), CategoryLookupConfig{})
	if n := svc.CachedCount(); n != 0 {
		t.Fatalf("CachedCount() = %d, want 0", n)
	}

	svc.SearchCategories(context.Background(), "drone")
	if n := svc.CachedCount(); n != 2 {
		t.Errorf("CachedCount() = %d, want 2", n)
	}
}

func TestSearchCategories_CancelledCallerDoesNotFailOthers(t *testing.T) {
	api := &mockCategoryAPI{page: samplePage(), release: make(chan struct{})}
	svc := NewCategoryLookupService(api, newMockCategoryCache(), CategoryLookupConfig{})

	// The first caller starts the shared fetch and then goes away
	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan []domain.RemoteCategory, 1)
	go func() {
		firstDone <- svc.SearchCategories(firstCtx, "drone")
	}()
	for api.pageCalls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	secondDone := make(chan []domain.RemoteCategory, 1)
	go func() {
		secondDone <- svc.SearchCategories(context.Background(), "drone")
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	select {
	case got := <-firstDone:
		if got != nil {
			t.Errorf("cancelled caller got %+v, want nil", got)
		}
	case <-time.After(time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(api.release)
	select {
	case got := <-secondDone:
		if len(got) != 2 {
			t.Errorf("live caller got %d results, want 2", len(got))
		}
	case <-time.After(time.Second):
		t.Fatal("live caller did not return")
	}

	if n := api.pageCalls.Load(); n != 1 {
		t.Errorf("remote calls = %d, want 1", n)
	}
}

func TestLookupGetCategoryByID(t *testing.T) {
	ctx := context.Background()

	t.Run("served from cache first", func(t *testing.T) {
		api := &mockCategoryAPI{page: samplePage()}
		cache := newMockCategoryCache()
		_ = cache.Set(ctx, "drone batteries", domain.RemoteCategory{ID: "pcmcat2", Name: "Drone Batteries"})
		svc := NewCategoryLookupService(api, cache, CategoryLookupConfig{})

		got := svc.GetCategoryByID(ctx, "pcmcat2")
		if got == nil || got.Name != "Drone Batteries" {
			t.Fatalf("GetCategoryByID = %+v, want Drone Batteries", got)
		}
		if n := api.idCalls.Load(); n != 0 {
			t.Errorf("remote calls = %d, want 0", n)
		}
	})

	t.Run("falls back to remote and caches the result", func(t *testing.T) {
		api := &mockCategoryAPI{page: samplePage()}
		cache := newMockCategoryCache()
		svc := NewCategoryLookupService(api, cache, CategoryLookupConfig{})

		got := svc.GetCategoryByID(ctx, "pcmcat3")
		if got == nil || got.Name != "Turntables" {
			t.Fatalf("GetCategoryByID = %+v, want Turntables", got)
		}
		if _, err := cache.Get(ctx, "turntables"); err != nil {
			t.Errorf("expected remote result cached: %v", err)
		}

		// Second lookup comes from the cache
		_ = svc.GetCategoryByID(ctx, "pcmcat3")
		if n := api.idCalls.Load(); n != 1 {
			t.Errorf("remote calls = %d, want 1", n)
		}
	})

	t.Run("not found and failures return nil", func(t *testing.T) {
		svc := NewCategoryLookupService(&mockCategoryAPI{page: samplePage()}, newMockCategoryCache(), CategoryLookupConfig{})
		if got := svc.GetCategoryByID(ctx, "missing"); got != nil {
			t.Errorf("GetCategoryByID(missing) = %+v, want nil", got)
		}

		svc = NewCategoryLookupService(&mockCategoryAPI{err: errors.New("timeout")}, newMockCategoryCache(), CategoryLookupConfig{})
		if got := svc.GetCategoryByID(ctx, "pcmcat1"); got != nil {
			t.Errorf("GetCategoryByID on failure = %+v, want nil", got)
		}
	})

	t.Run("remote not found is not logged as a failure", func(t *testing.T) {
		var buf bytes.Buffer
		log.SetOutput(&buf)
		defer log.SetOutput(os.Stderr)

		svc := NewCategoryLookupService(&mockCategoryAPI{page: samplePage()}, newMockCategoryCache(), CategoryLookupConfig{})
		if got := svc.GetCategoryByID(ctx, "missing"); got != nil {
			t.Fatalf("GetCategoryByID(missing) = %+v, want nil", got)
		}
		if strings.Contains(buf.String(), "failed") {
			t.Errorf("not found was logged as a failure: %s", buf.String())
		}

		svc = NewCategoryLookupService(&mockCategoryAPI{err: errors.New("timeout")}, newMockCategoryCache(), CategoryLookupConfig{})
		_ = svc.GetCategoryByID(ctx, "pcmcat1")
		if !strings.Contains(buf.String(), "failed") {
			t.Errorf("remote error was not logged, got %q", buf.String())
		}
	})

	t.Run("empty id returns nil", func(t *testing.T) {
		api := &mockCategoryAPI{page: samplePage()}
		svc := NewCategoryLookupService(api, newMockCategoryCache(), CategoryLookupConfig{})

		if got := svc.GetCategoryByID(ctx, ""); got != nil {
			t.Errorf("GetCategoryByID(\"\") = %+v, want nil", got)
		}
		if n := api.idCalls.Load(); n != 0 {
			t.Errorf("remote calls = %d, want 0", n)
		}
	})
}

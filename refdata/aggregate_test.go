package refdata

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/pagemark/go-catalog-client/catalog"
	"github.com/pagemark/go-catalog-client/collectioncache"
)

// countingSource serves a fixed list and counts fetches so tests can
// tell a cache hit from a refetch.
type countingSource[T, I any] struct {
	items []T
	err   atomic.Pointer[error]
	calls atomic.Int64
}

func (s *countingSource[T, I]) List(context.Context) ([]T, error) {
	s.calls.Add(1)
	if p := s.err.Load(); p != nil {
		return nil, *p
	}
	return s.items, nil
}

func (s *countingSource[T, I]) Create(context.Context, I) error         { return nil }
func (s *countingSource[T, I]) Update(context.Context, string, I) error { return nil }
func (s *countingSource[T, I]) Remove(context.Context, string) error    { return nil }

type fixture struct {
	categories *countingSource[catalog.Category, catalog.CategoryInput]
	authors    *countingSource[catalog.Author, catalog.AuthorInput]
	publishers *countingSource[catalog.Publisher, catalog.PublisherInput]
	agg        *AggregateCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		categories: &countingSource[catalog.Category, catalog.CategoryInput]{
			items: []catalog.Category{{ID: "c1", Name: "Sci-Fi"}},
		},
		authors: &countingSource[catalog.Author, catalog.AuthorInput]{
			items: []catalog.Author{{ID: "a1", Name: "Herbert"}},
		},
		publishers: &countingSource[catalog.Publisher, catalog.PublisherInput]{
			items: []catalog.Publisher{{ID: "p1", Name: "Ace"}},
		},
	}
	categories := collectioncache.New[catalog.Category, catalog.CategoryInput]("categories", f.categories, nil)
	authors := collectioncache.New[catalog.Author, catalog.AuthorInput]("authors", f.authors, nil)
	publishers := collectioncache.New[catalog.Publisher, catalog.PublisherInput]("publishers", f.publishers, nil)
	t.Cleanup(func() {
		categories.Close()
		authors.Close()
		publishers.Close()
	})
	f.agg = New(categories, authors, publishers)
	return f
}

func TestEnsureLoaded_PopulatesAllThree(t *testing.T) {
	f := newFixture(t)

	if f.agg.Loaded() {
		t.Fatal("aggregate reported loaded before any fetch")
	}
	if got := f.agg.Categories(); got != nil {
		t.Errorf("categories before load = %v, want nil", got)
	}

	if err := f.agg.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !f.agg.Loaded() {
		t.Fatal("aggregate not loaded after successful fetch")
	}
	if got := f.agg.Categories(); len(got) != 1 || got[0].Name != "Sci-Fi" {
		t.Errorf("unexpected categories: %v", got)
	}
	if got := f.agg.Authors(); len(got) != 1 || got[0].Name != "Herbert" {
		t.Errorf("unexpected authors: %v", got)
	}
	if got := f.agg.Publishers(); len(got) != 1 || got[0].Name != "Ace" {
		t.Errorf("unexpected publishers: %v", got)
	}
}

func TestEnsureLoaded_SecondCallIsANoOp(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		if err := f.agg.EnsureLoaded(context.Background()); err != nil {
			t.Fatalf("load %d failed: %v", i, err)
		}
	}

	if got := f.categories.calls.Load(); got != 1 {
		t.Errorf("category fetches = %d, want 1", got)
	}
	if got := f.authors.calls.Load(); got != 1 {
		t.Errorf("author fetches = %d, want 1", got)
	}
}

func TestEnsureLoaded_PartialFailureExposesNothing(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("authors down")
	f.authors.err.Store(&boom)

	err := f.agg.EnsureLoaded(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected the author failure, got %v", err)
	}
	if f.agg.Loaded() {
		t.Fatal("aggregate reported loaded after a partial failure")
	}
	// Even collections that fetched fine stay hidden until all succeed.
	if got := f.agg.Categories(); got != nil {
		t.Errorf("categories exposed after partial failure: %v", got)
	}
	if got := f.agg.Authors(); got != nil {
		t.Errorf("authors exposed after failure: %v", got)
	}
}

func TestEnsureLoaded_RetriesAfterFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("publishers down")
	f.publishers.err.Store(&boom)

	if err := f.agg.EnsureLoaded(context.Background()); err == nil {
		t.Fatal("expected first load to fail")
	}

	f.publishers.err.Store(nil)
	if err := f.agg.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if !f.agg.Loaded() {
		t.Fatal("aggregate not loaded after retry")
	}
	if got := f.agg.Publishers(); len(got) != 1 {
		t.Errorf("unexpected publishers after retry: %v", got)
	}
}

func TestForceReload_BypassesResidentSnapshots(t *testing.T) {
	f := newFixture(t)

	if err := f.agg.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	f.categories.items = []catalog.Category{
		{ID: "c1", Name: "Sci-Fi"},
		{ID: "c2", Name: "Fantasy"},
	}

	if err := f.agg.ForceReload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if got := f.categories.calls.Load(); got != 2 {
		t.Errorf("category fetches = %d, want 2", got)
	}
	if got := f.agg.Categories(); len(got) != 2 {
		t.Errorf("reload did not pick up new options: %v", got)
	}
}

func TestForceReload_FailureRevertsToUnloaded(t *testing.T) {
	f := newFixture(t)

	if err := f.agg.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	boom := errors.New("categories down")
	f.categories.err.Store(&boom)
	if err := f.agg.ForceReload(context.Background()); err == nil {
		t.Fatal("expected reload to fail")
	}
	if f.agg.Loaded() {
		t.Fatal("aggregate still loaded after failed reload")
	}
	if got := f.agg.Authors(); got != nil {
		t.Errorf("authors exposed after failed reload: %v", got)
	}
}

package catalogapi

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/pagemark/go-catalog-client/catalog"
	"github.com/pagemark/go-catalog-client/gateway"
)

func TestWishlists_EntryEndpoints(t *testing.T) {
	doer := &fakeDoer{}
	w := NewWishlists(doer)

	if err := w.AddBook(context.Background(), "w1", "b1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := w.RemoveBook(context.Background(), "w1", "b1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	want := []string{
		"POST /Wishlist/w1/books/b1",
		"DELETE /Wishlist/w1/books/b1",
	}
	if got := doer.recorded(); !reflect.DeepEqual(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestEvents_EntryEndpoints(t *testing.T) {
	doer := &fakeDoer{}
	e := NewEvents(doer)

	if err := e.AddBook(context.Background(), "e1", "b1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := e.RemoveBook(context.Background(), "e1", "b1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	want := []string{
		"POST /Event/e1/books/b1",
		"DELETE /Event/e1/books/b1",
	}
	if got := doer.recorded(); !reflect.DeepEqual(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestEntryPath_EscapesIDs(t *testing.T) {
	got := entryPath("/Wishlist", "w 1", "b/1")
	want := "/Wishlist/w%201/books/b%2F1"
	if got != want {
		t.Errorf("entryPath = %q, want %q", got, want)
	}
}

func TestResource_CRUDPaths(t *testing.T) {
	doer := &fakeDoer{}
	src := NewCategories(doer)

	if _, err := src.List(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if err := src.Create(context.Background(), catalog.CategoryInput{Name: "Sci-Fi"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := src.Update(context.Background(), "c1", catalog.CategoryInput{Name: "Science Fiction"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := src.Remove(context.Background(), "c1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	want := []string{
		"GET /Category",
		"POST /Category",
		"PUT /Category/c1",
		"DELETE /Category/c1",
	}
	if got := doer.recorded(); !reflect.DeepEqual(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestResource_UpdateValidatesInput(t *testing.T) {
	doer := &fakeDoer{}
	src := NewAuthors(doer)

	err := src.Update(context.Background(), "a1", catalog.AuthorInput{})
	if !errors.Is(err, gateway.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if calls := doer.recorded(); len(calls) != 0 {
		t.Errorf("invalid payload reached the network: %v", calls)
	}
}

func TestReviews_ForBookPathsAndScope(t *testing.T) {
	doer := &fakeDoer{respond: func(method, path string) ([]byte, error) {
		if method == "GET" {
			return []byte(`[{"id":"r1","bookId":"b1","rating":4}]`), nil
		}
		return []byte(`{}`), nil
	}}
	r := NewReviews(doer)
	src := r.ForBook("b1")

	got, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].Score != 4 {
		t.Errorf("unexpected reviews: %+v", got)
	}

	if err := src.Create(context.Background(), catalog.ReviewInput{BookID: "b1", Score: 5}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// A review for a different book cannot pass through this collection.
	err = src.Create(context.Background(), catalog.ReviewInput{BookID: "b2", Score: 5})
	if !errors.Is(err, gateway.ErrValidation) {
		t.Fatalf("expected scope mismatch to be rejected, got %v", err)
	}

	want := []string{
		"GET /ReviewRating/book/b1",
		"POST /ReviewRating",
	}
	if calls := doer.recorded(); !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestReviews_Average(t *testing.T) {
	doer := &fakeDoer{respond: func(method, path string) ([]byte, error) {
		return []byte(`{"averageRating":4.25}`), nil
	}}
	r := NewReviews(doer)

	got, err := r.Average(context.Background(), "b1")
	if err != nil {
		t.Fatalf("average failed: %v", err)
	}
	if got != 4.25 {
		t.Errorf("average = %v, want 4.25", got)
	}
	if calls := doer.recorded(); len(calls) != 1 || calls[0] != "GET /ReviewRating/book/b1/average" {
		t.Errorf("unexpected calls: %v", calls)
	}
}

package catalogapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pagemark/go-catalog-client/catalog"
	"github.com/pagemark/go-catalog-client/collectioncache"
	"github.com/pagemark/go-catalog-client/gateway"
)

const reviewPath = "/ReviewRating"

// Reviews scopes the review collection per book: each book gets its own
// Source, which is what lets the reviews service run one cache, and so
// one in-flight fetch, per book.
type Reviews struct {
	gw gateway.Doer
}

// NewReviews builds the review source factory.
func NewReviews(gw gateway.Doer) *Reviews {
	return &Reviews{gw: gw}
}

// ForBook returns the review collection source for one book.
func (r *Reviews) ForBook(bookID string) collectioncache.Source[catalog.Review, catalog.ReviewInput] {
	return bookReviews{gw: r.gw, bookID: bookID}
}

// Average returns the server's own average for a book. The aggregator
// computes its number locally from the snapshot; this is exposed for
// consumers that want the server's view instead.
func (r *Reviews) Average(ctx context.Context, bookID string) (float64, error) {
	path := reviewPath + "/book/" + url.PathEscape(bookID) + "/average"
	data, err := r.gw.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return 0, err
	}
	payload, err := decodeOne[struct {
		AverageRating float64 `json:"averageRating"`
	}](path, data)
	if err != nil {
		return 0, err
	}
	return payload.AverageRating, nil
}

// bookReviews is the Source for one book's reviews.
type bookReviews struct {
	gw     gateway.Doer
	bookID string
}

func (b bookReviews) List(ctx context.Context) ([]catalog.Review, error) {
	path := reviewPath + "/book/" + url.PathEscape(b.bookID)
	data, err := b.gw.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[catalog.Review](path, data)
}

func (b bookReviews) Create(ctx context.Context, input catalog.ReviewInput) error {
	if input.BookID != b.bookID {
		return &gateway.Error{
			Method: http.MethodPost,
			Path:   reviewPath,
			Detail: "review book id does not match this collection",
			Err:    gateway.ErrValidation,
		}
	}
	if err := input.Validate(); err != nil {
		return &gateway.Error{Method: http.MethodPost, Path: reviewPath, Detail: err.Error(), Err: gateway.ErrValidation}
	}
	_, err := b.gw.Do(ctx, http.MethodPost, reviewPath, input)
	return err
}

func (b bookReviews) Update(ctx context.Context, id string, input catalog.ReviewInput) error {
	path := reviewPath + "/" + url.PathEscape(id)
	if err := input.Validate(); err != nil {
		return &gateway.Error{Method: http.MethodPut, Path: path, Detail: err.Error(), Err: gateway.ErrValidation}
	}
	_, err := b.gw.Do(ctx, http.MethodPut, path, input)
	return err
}

func (b bookReviews) Remove(ctx context.Context, id string) error {
	_, err := b.gw.Do(ctx, http.MethodDelete, reviewPath+"/"+url.PathEscape(id), nil)
	return err
}

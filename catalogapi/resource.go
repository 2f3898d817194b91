package catalogapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pagemark/go-catalog-client/catalog"
	"github.com/pagemark/go-catalog-client/gateway"
)

// resource implements collectioncache.Source for one flat collection
// endpoint. The API follows the same shape for every collection: GET the
// root for the full list, POST the root to create, PUT/DELETE the record
// path to update or remove.
type resource[T any, I catalog.Input] struct {
	gw   gateway.Doer
	path string
}

func (r resource[T, I]) List(ctx context.Context) ([]T, error) {
	data, err := r.gw.Do(ctx, http.MethodGet, r.path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](r.path, data)
}

func (r resource[T, I]) Create(ctx context.Context, input I) error {
	if err := input.Validate(); err != nil {
		return &gateway.Error{Method: http.MethodPost, Path: r.path, Detail: err.Error(), Err: gateway.ErrValidation}
	}
	_, err := r.gw.Do(ctx, http.MethodPost, r.path, input)
	return err
}

func (r resource[T, I]) Update(ctx context.Context, id string, input I) error {
	path := r.recordPath(id)
	if err := input.Validate(); err != nil {
		return &gateway.Error{Method: http.MethodPut, Path: path, Detail: err.Error(), Err: gateway.ErrValidation}
	}
	_, err := r.gw.Do(ctx, http.MethodPut, path, input)
	return err
}

func (r resource[T, I]) Remove(ctx context.Context, id string) error {
	_, err := r.gw.Do(ctx, http.MethodDelete, r.recordPath(id), nil)
	return err
}

func (r resource[T, I]) recordPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

// decodeList unmarshals a collection response. A body the client cannot
// decode is classified ErrUnknown: the server answered, but not with the
// collection shape.
func decodeList[T any](path string, data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &gateway.Error{Method: http.MethodGet, Path: path, Detail: err.Error(), Err: gateway.ErrUnknown}
	}
	return items, nil
}

// decodeOne unmarshals a single-record response.
func decodeOne[T any](path string, data []byte) (T, error) {
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		var zero T
		return zero, &gateway.Error{Method: http.MethodGet, Path: path, Detail: err.Error(), Err: gateway.ErrUnknown}
	}
	return item, nil
}

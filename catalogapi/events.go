package catalogapi

import (
	"context"
	"net/http"

	"github.com/pagemark/go-catalog-client/catalog"
	"github.com/pagemark/go-catalog-client/gateway"
)

const eventPath = "/Event"

// Events is the event collection source plus the entry endpoints that
// associate books with an event.
type Events struct {
	resource[catalog.Event, catalog.EventInput]
}

// NewEvents builds the event source.
func NewEvents(gw gateway.Doer) *Events {
	return &Events{
		resource: resource[catalog.Event, catalog.EventInput]{gw: gw, path: eventPath},
	}
}

// AddBook features a book at an event.
func (e *Events) AddBook(ctx context.Context, eventID, bookID string) error {
	_, err := e.gw.Do(ctx, http.MethodPost, entryPath(eventPath, eventID, bookID), nil)
	return err
}

// RemoveBook withdraws a book from an event.
func (e *Events) RemoveBook(ctx context.Context, eventID, bookID string) error {
	_, err := e.gw.Do(ctx, http.MethodDelete, entryPath(eventPath, eventID, bookID), nil)
	return err
}

package collectioncache

import "context"

// Source is the remote collection a Cache mirrors: the full-collection
// read plus the three standard writes. T is the entity, I its mutation
// payload. Implementations live in catalogapi, one per collection.
type Source[T, I any] interface {
	// List returns the collection's complete current contents.
	List(ctx context.Context) ([]T, error)

	// Create adds a record. The server assigns the id.
	Create(ctx context.Context, input I) error

	// Update replaces the record with the given id.
	Update(ctx context.Context, id string, input I) error

	// Remove deletes the record with the given id.
	Remove(ctx context.Context, id string) error
}

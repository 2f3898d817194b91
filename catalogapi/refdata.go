package catalogapi

import (
	"github.com/pagemark/go-catalog-client/catalog"
	"github.com/pagemark/go-catalog-client/collectioncache"
	"github.com/pagemark/go-catalog-client/gateway"
)

// Reference-data sources. Plain resource instances; these collections
// have no extra endpoints.

// NewCategories returns the category collection source.
func NewCategories(gw gateway.Doer) collectioncache.Source[catalog.Category, catalog.CategoryInput] {
	return resource[catalog.Category, catalog.CategoryInput]{gw: gw, path: "/Category"}
}

// NewAuthors returns the author collection source.
func NewAuthors(gw gateway.Doer) collectioncache.Source[catalog.Author, catalog.AuthorInput] {
	return resource[catalog.Author, catalog.AuthorInput]{gw: gw, path: "/Author"}
}

// NewPublishers returns the publisher collection source.
func NewPublishers(gw gateway.Doer) collectioncache.Source[catalog.Publisher, catalog.PublisherInput] {
	return resource[catalog.Publisher, catalog.PublisherInput]{gw: gw, path: "/Publisher"}
}

package interfaces

import "context"

// IProductStore abstracts the remote sheet holding the product catalog. The
// catalog is an ordered list of names; writes replace the full list.

type IProductStore interface {
	FetchAll(ctx context.Context) ([]string, error)
	ReplaceAll(ctx context.Context, names []string) error
}

// IProductCache is the local fallback for the catalog, consulted when the
// remote sheet is unreachable and refreshed after every successful load.
type IProductCache interface {
	GetProducts(ctx context.Context) ([]string, error)
	SetProducts(ctx context.Context, names []string) error
}

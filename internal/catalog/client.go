package catalog

import (
	"context"

	"github.com/shopapp/shopping-client/internal/model"
)

// Client reads the product catalog and per-product stock from the external
// shopping service, and triggers the privileged environment reset.
type Client interface {
	// FetchProducts returns the full catalog. Callers replace their cached
	// copy wholesale on success and keep the previous one on failure.
	FetchProducts(ctx context.Context) ([]model.Product, error)

	// FetchProduct returns a single catalog entry.
	FetchProduct(ctx context.Context, productID int64) (model.Product, error)

	// FetchStock returns units available for new reservation of one product,
	// exclusive of the current user's held quantity.
	FetchStock(ctx context.Context, productID int64) (int, error)

	// Reset restores catalog, stock and carts to the service's baseline.
	// Privileged; intended for controlled environments.
	Reset(ctx context.Context) error
}

package cart

import (
	"context"

	"github.com/shopapp/shopping-client/internal/model"
)

// Client mutates the server-held cart. Mutations deliberately return no
// state: callers must re-fetch cart and stock afterwards instead of guessing
// the result locally.
type Client interface {
	// FetchCart returns the session user's current cart. On failure callers
	// keep their prior snapshot.
	FetchCart(ctx context.Context) (model.Cart, error)

	// AddItem reserves quantity units of a product at the given unit price.
	// Rejected with a ValidationRejected error when stock is insufficient;
	// the server is authoritative over any client-side pre-check.
	AddItem(ctx context.Context, productID int64, quantity int, price float64) error

	// UpdateItem changes an existing line's quantity. Same rejection
	// semantics as AddItem.
	UpdateItem(ctx context.Context, itemID int64, quantity int) error

	// RemoveItem deletes a line. Removing an already-removed line counts as
	// success.
	RemoveItem(ctx context.Context, itemID int64) error
}

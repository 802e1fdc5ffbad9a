package shopper

import (
	"context"

	"github.com/shopapp/shopping-client/internal/model"
)

// Phase is the coarse state of the shopping view's current logical
// operation.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseFetching Phase = "fetching"
	PhaseReady    Phase = "ready"
	PhaseFailed   Phase = "failed"
	PhaseMutating Phase = "mutating"
)

// Notifier is the single user-facing message channel. A new message
// replaces the previous one; nothing queues.
type Notifier interface {
	Notify(msg string)
}

// View is an immutable snapshot of engine state for rendering. Products are
// already ordered per the current sort state; Cart.Total is the
// server-supplied figure, displayed verbatim.
type View struct {
	Phase            Phase
	Products         []model.Product
	Stocks           model.StockLevels
	Cart             model.Cart
	Selected         *model.Product
	SelectedQuantity int
	Editing          *model.CartItem
	EditQuantity     int
	Sort             SortState
	Resetting        bool
}

// UseCase sequences catalog/cart fetches, applies the mandatory
// post-mutation refresh, and reconciles user actions with server truth.
type UseCase interface {
	// Activate performs the initial load: cart, products, then stock for
	// every known product.
	Activate(ctx context.Context) error

	// Refresh re-fetches cart and all stock levels. Concurrent refreshes
	// collapse into one sweep.
	Refresh(ctx context.Context) error

	// SelectProduct highlights a product for a subsequent Add.
	SelectProduct(productID int64) error

	// SetQuantity records the requested quantity for the selection.
	SetQuantity(quantity int) error

	// Add submits the current selection. Known-zero-stock adds are refused
	// client-side without touching the network.
	Add(ctx context.Context) error

	// StartEdit targets a cart line for a quantity change.
	StartEdit(itemID int64) error

	// Update submits a new quantity for the line being edited.
	Update(ctx context.Context, quantity int) error

	// Remove deletes a cart line; removing an absent line is success.
	Remove(ctx context.Context, itemID int64) error

	// Reset restores the environment to its baseline, then reloads
	// products and cart. Refused while another reset is in flight.
	Reset(ctx context.Context) error

	// Sort selects a sort key (same key toggles direction).
	Sort(key SortKey)

	// Snapshot returns the current view state.
	Snapshot() View
}

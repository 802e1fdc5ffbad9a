package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/shopapp/shopping-client/internal/apperr"
	"github.com/shopapp/shopping-client/internal/cart"
	"github.com/shopapp/shopping-client/internal/catalog"
	"github.com/shopapp/shopping-client/internal/logger"
	"github.com/shopapp/shopping-client/internal/model"
	"github.com/shopapp/shopping-client/internal/shopper"
)

// User-facing messages. Validation rejections surface the server's reason
// verbatim instead of these.
const (
	msgProductsFailed = "Failed to load products. Please try again later."
	msgAddFailed      = "Failed to add item to cart. Please try again."
	msgUpdateFailed   = "Failed to update cart item. Please try again."
	msgRemoveFailed   = "Failed to remove item from cart. Please try again."
	msgResetFailed    = "Failed to reset environment"
	msgResetOK        = "Environment reset successfully"
	msgSelectFirst    = "Please select a product first"
)

type shopperUseCase struct {
	catalog  catalog.Client
	cart     cart.Client
	notifier shopper.Notifier
	logger   logger.ZapLogger

	// Collapses overlapping post-mutation refreshes into one sweep.
	refreshGroup singleflight.Group

	mu        sync.RWMutex
	phase     shopper.Phase
	products  []model.Product
	stocks    model.StockLevels
	cartState model.Cart
	selected  *model.Product
	selQty    int
	editing   *model.CartItem
	editQty   int
	sortState shopper.SortState
	resetting bool
}

func NewShopperUseCase(catalogClient catalog.Client, cartClient cart.Client, notifier shopper.Notifier, log logger.ZapLogger) shopper.UseCase {
	return &shopperUseCase{
		catalog:   catalogClient,
		cart:      cartClient,
		notifier:  notifier,
		logger:    log,
		phase:     shopper.PhaseIdle,
		stocks:    model.StockLevels{},
		selQty:    1,
		sortState: shopper.NewSortState(),
	}
}

func (uc *shopperUseCase) Activate(ctx context.Context) error {
	uc.setPhase(shopper.PhaseFetching)

	// A failed cart fetch keeps the prior (empty) snapshot and is not
	// surfaced; the catalog is what the screen cannot live without.
	if crt, err := uc.cart.FetchCart(ctx); err != nil {
		uc.logger.Warn("cart fetch failed on activation", zap.Error(err))
	} else {
		uc.mu.Lock()
		uc.cartState = crt
		uc.mu.Unlock()
	}

	products, err := uc.catalog.FetchProducts(ctx)
	if err != nil {
		uc.logger.Error("product fetch failed", zap.Error(err))
		uc.setPhase(shopper.PhaseFailed)
		uc.notifier.Notify(msgProductsFailed)
		return err
	}
	uc.mu.Lock()
	uc.products = products
	uc.mu.Unlock()

	uc.refreshStocks(ctx)
	uc.setPhase(shopper.PhaseReady)
	return nil
}

func (uc *shopperUseCase) Refresh(ctx context.Context) error {
	_, err, _ := uc.refreshGroup.Do("refresh", func() (interface{}, error) {
		uc.refreshCart(ctx)
		uc.refreshStocks(ctx)
		return nil, nil
	})
	return err
}

// refreshCart replaces the cart snapshot with server truth; a failure keeps
// the stale-but-present snapshot.
func (uc *shopperUseCase) refreshCart(ctx context.Context) {
	crt, err := uc.cart.FetchCart(ctx)
	if err != nil {
		uc.logger.Warn("cart refresh failed, keeping previous snapshot", zap.Error(err))
		return
	}
	uc.mu.Lock()
	uc.cartState = crt
	uc.mu.Unlock()
}

// refreshStocks fans out one stock request per known product and joins
// before swapping the mapping in. A product whose request fails simply
// stays unknown for this sweep.
func (uc *shopperUseCase) refreshStocks(ctx context.Context) {
	uc.mu.RLock()
	ids := make([]int64, 0, len(uc.products))
	for _, p := range uc.products {
		ids = append(ids, p.ID)
	}
	uc.mu.RUnlock()

	fresh := model.StockLevels{}
	var freshMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			stock, err := uc.catalog.FetchStock(gctx, id)
			if err != nil {
				uc.logger.Warn("stock fetch failed for product",
					zap.Int64("product_id", id), zap.Error(err))
				return nil // tolerated; entry stays unknown
			}
			freshMu.Lock()
			fresh[id] = stock
			freshMu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	uc.mu.Lock()
	uc.stocks = fresh
	uc.mu.Unlock()
}

func (uc *shopperUseCase) SelectProduct(productID int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var found *model.Product
	for i := range uc.products {
		if uc.products[i].ID == productID {
			found = &uc.products[i]
			break
		}
	}
	if found == nil {
		return apperr.New(apperr.Unknown, "unknown product")
	}
	if stock, known := uc.stocks.Lookup(productID); !shopper.CanAdd(stock, known) {
		uc.notifier.Notify("'" + found.Name + "' is out of stock")
		return apperr.New(apperr.ValidationRejected, "product is out of stock")
	}
	p := *found
	uc.selected = &p
	uc.selQty = 1
	return nil
}

func (uc *shopperUseCase) SetQuantity(quantity int) error {
	if quantity < 1 {
		return apperr.New(apperr.ValidationRejected, "quantity must be at least 1")
	}
	uc.mu.Lock()
	uc.selQty = quantity
	uc.mu.Unlock()
	return nil
}

func (uc *shopperUseCase) Add(ctx context.Context) error {
	uc.mu.RLock()
	sel := uc.selected
	qty := uc.selQty
	var stock int
	var known bool
	if sel != nil {
		stock, known = uc.stocks.Lookup(sel.ID)
	}
	uc.mu.RUnlock()

	if sel == nil {
		uc.notifier.Notify(msgSelectFirst)
		return apperr.New(apperr.ValidationRejected, "no product selected")
	}
	// A known-zero-stock add must never hit the network. Anything else is
	// only an optimistic pre-check: the server re-validates every add.
	if !shopper.CanAdd(stock, known) {
		uc.notifier.Notify("'" + sel.Name + "' is out of stock")
		return apperr.New(apperr.ValidationRejected, "product is out of stock")
	}
	if qty < 1 {
		uc.notifier.Notify(msgAddFailed)
		return apperr.New(apperr.ValidationRejected, "quantity must be at least 1")
	}

	return uc.mutate(ctx, msgAddFailed, func(ctx context.Context) error {
		return uc.cart.AddItem(ctx, sel.ID, qty, sel.Price)
	})
}

func (uc *shopperUseCase) StartEdit(itemID int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	item, ok := uc.cartState.ItemByID(itemID)
	if !ok {
		return apperr.New(apperr.Unknown, "cart item not found")
	}
	uc.editing = &item
	uc.editQty = item.Quantity
	return nil
}

func (uc *shopperUseCase) Update(ctx context.Context, quantity int) error {
	uc.mu.RLock()
	editing := uc.editing
	uc.mu.RUnlock()

	if editing == nil {
		return apperr.New(apperr.Unknown, "no cart item targeted for editing")
	}
	if quantity < 1 {
		uc.notifier.Notify(msgUpdateFailed)
		return apperr.New(apperr.ValidationRejected, "quantity must be at least 1")
	}

	return uc.mutate(ctx, msgUpdateFailed, func(ctx context.Context) error {
		return uc.cart.UpdateItem(ctx, editing.ID, quantity)
	})
}

func (uc *shopperUseCase) Remove(ctx context.Context, itemID int64) error {
	return uc.mutate(ctx, msgRemoveFailed, func(ctx context.Context) error {
		return uc.cart.RemoveItem(ctx, itemID)
	})
}

func (uc *shopperUseCase) Reset(ctx context.Context) error {
	uc.mu.Lock()
	if uc.resetting {
		uc.mu.Unlock()
		return apperr.New(apperr.ValidationRejected, "a reset is already in flight")
	}
	uc.resetting = true
	uc.mu.Unlock()
	defer func() {
		uc.mu.Lock()
		uc.resetting = false
		uc.mu.Unlock()
	}()

	uc.setPhase(shopper.PhaseMutating)
	if err := uc.catalog.Reset(ctx); err != nil {
		uc.logger.Error("environment reset failed", zap.Error(err))
		uc.setPhase(shopper.PhaseReady)
		uc.notifier.Notify(msgResetFailed)
		return err
	}

	uc.setPhase(shopper.PhaseFetching)
	if products, err := uc.catalog.FetchProducts(ctx); err != nil {
		uc.logger.Warn("product fetch after reset failed", zap.Error(err))
	} else {
		uc.mu.Lock()
		uc.products = products
		uc.selected = nil
		uc.mu.Unlock()
	}
	uc.refreshCart(ctx)
	uc.refreshStocks(ctx)
	uc.clearSelectionProgress()
	uc.setPhase(shopper.PhaseReady)
	uc.notifier.Notify(msgResetOK)
	return nil
}

func (uc *shopperUseCase) Sort(key shopper.SortKey) {
	uc.mu.Lock()
	uc.sortState.Select(key)
	uc.mu.Unlock()
}

func (uc *shopperUseCase) Snapshot() shopper.View {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	stocks := make(model.StockLevels, len(uc.stocks))
	for id, s := range uc.stocks {
		stocks[id] = s
	}

	view := shopper.View{
		Phase:            uc.phase,
		Products:         shopper.SortProducts(uc.products, uc.stocks, uc.sortState.Key, uc.sortState.Dir),
		Stocks:           stocks,
		Cart:             uc.cartState,
		SelectedQuantity: uc.selQty,
		EditQuantity:     uc.editQty,
		Sort:             uc.sortState,
		Resetting:        uc.resetting,
	}
	if uc.selected != nil {
		p := *uc.selected
		view.Selected = &p
	}
	if uc.editing != nil {
		it := *uc.editing
		view.Editing = &it
	}
	return view
}

// mutate runs one cart mutation and, only when it succeeds, the mandatory
// refresh of cart and stock. The refresh starts strictly after the mutation
// call has returned.
func (uc *shopperUseCase) mutate(ctx context.Context, genericMsg string, call func(context.Context) error) error {
	uc.setPhase(shopper.PhaseMutating)
	if err := call(ctx); err != nil {
		uc.setPhase(shopper.PhaseReady)
		uc.notifier.Notify(rejectionMessage(err, genericMsg))
		return err
	}

	uc.clearSelectionProgress()
	uc.setPhase(shopper.PhaseFetching)
	_ = uc.Refresh(ctx)
	uc.setPhase(shopper.PhaseReady)
	return nil
}

// clearSelectionProgress resets the ephemeral selection state after a
// successful mutation. The highlighted product stays highlighted.
func (uc *shopperUseCase) clearSelectionProgress() {
	uc.mu.Lock()
	uc.selQty = 1
	uc.editing = nil
	uc.editQty = 1
	uc.mu.Unlock()
}

func (uc *shopperUseCase) setPhase(p shopper.Phase) {
	uc.mu.Lock()
	uc.phase = p
	uc.mu.Unlock()
}

// rejectionMessage prefers the server's own reason for business-rule
// rejections and falls back to the generic message otherwise.
func rejectionMessage(err error, generic string) string {
	if apperr.KindOf(err) == apperr.ValidationRejected {
		if r := apperr.Reason(err); r != "" {
			return r
		}
	}
	return generic
}

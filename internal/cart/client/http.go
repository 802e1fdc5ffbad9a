package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/shopapp/shopping-client/internal/apperr"
	"github.com/shopapp/shopping-client/internal/cart"
	"github.com/shopapp/shopping-client/internal/httpx"
	"github.com/shopapp/shopping-client/internal/logger"
	"github.com/shopapp/shopping-client/internal/model"
)

type HTTPClient struct {
	http   *httpx.Client
	logger logger.ZapLogger
}

func NewHTTPClient(h *httpx.Client, log logger.ZapLogger) cart.Client {
	return &HTTPClient{http: h, logger: log}
}

func (c *HTTPClient) FetchCart(ctx context.Context) (model.Cart, error) {
	var crt model.Cart
	if err := c.http.Do(ctx, http.MethodGet, "/api/shopping/cart", nil, nil, &crt); err != nil {
		return model.Cart{}, err
	}
	return crt, nil
}

type addItemBody struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

func (c *HTTPClient) AddItem(ctx context.Context, productID int64, quantity int, price float64) error {
	// The service answers with the updated cart; it is discarded because the
	// post-mutation refresh re-fetches authoritative state anyway.
	return c.http.Do(ctx, http.MethodPost, "/api/shopping/cart/add", nil,
		addItemBody{ProductID: productID, Quantity: quantity, Price: price}, nil)
}

func (c *HTTPClient) UpdateItem(ctx context.Context, itemID int64, quantity int) error {
	query := url.Values{}
	query.Set("quantity", strconv.Itoa(quantity))
	path := fmt.Sprintf("/api/shopping/cart/update/%d", itemID)
	return c.http.Do(ctx, http.MethodPut, path, query, nil, nil)
}

func (c *HTTPClient) RemoveItem(ctx context.Context, itemID int64) error {
	path := fmt.Sprintf("/api/shopping/cart/remove/%d", itemID)
	err := c.http.Do(ctx, http.MethodDelete, path, nil, nil, nil)
	if err != nil && apperr.HTTPStatus(err) == http.StatusNotFound {
		// Already gone server-side; removal is idempotent from our side.
		c.logger.Debug("remove on absent cart item treated as success", zap.Int64("item_id", itemID))
		return nil
	}
	return err
}

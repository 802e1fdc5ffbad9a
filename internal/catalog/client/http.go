package client

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/shopapp/shopping-client/internal/catalog"
	"github.com/shopapp/shopping-client/internal/httpx"
	"github.com/shopapp/shopping-client/internal/logger"
	"github.com/shopapp/shopping-client/internal/model"
)

type HTTPClient struct {
	http   *httpx.Client
	logger logger.ZapLogger
}

func NewHTTPClient(h *httpx.Client, log logger.ZapLogger) catalog.Client {
	return &HTTPClient{http: h, logger: log}
}

func (c *HTTPClient) FetchProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.http.Do(ctx, http.MethodGet, "/api/shopping/products", nil, nil, &products); err != nil {
		return nil, err
	}
	c.logger.Debug("fetched products", zap.Int("count", len(products)))
	return products, nil
}

func (c *HTTPClient) FetchProduct(ctx context.Context, productID int64) (model.Product, error) {
	var p model.Product
	path := fmt.Sprintf("/api/shopping/products/%d", productID)
	if err := c.http.Do(ctx, http.MethodGet, path, nil, nil, &p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// stockResponse also carries productId and views; only stock matters here.
type stockResponse struct {
	Stock int `json:"stock"`
}

func (c *HTTPClient) FetchStock(ctx context.Context, productID int64) (int, error) {
	var resp stockResponse
	path := fmt.Sprintf("/api/shopping/products/%d/stock", productID)
	if err := c.http.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Stock, nil
}

func (c *HTTPClient) Reset(ctx context.Context) error {
	return c.http.Do(ctx, http.MethodPost, "/api/admin/reset", nil, nil, nil)
}

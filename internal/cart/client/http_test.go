package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopapp/shopping-client/internal/apperr"
	"github.com/shopapp/shopping-client/internal/httpx"
	"github.com/shopapp/shopping-client/internal/logger"
)

func newClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	h := httpx.New(srv.URL, time.Second, nil, logger.NewNop())
	return NewHTTPClient(h, logger.NewNop()).(*HTTPClient)
}

func TestFetchCart(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/shopping/cart", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"userId":42,"items":[{"id":9,"productId":1,"quantity":3,"price":999.99}],"total":2999.97}`))
	}))

	crt, err := c.FetchCart(context.Background())
	require.NoError(t, err)
	require.Len(t, crt.Items, 1)
	assert.Equal(t, int64(9), crt.Items[0].ID)
	assert.Equal(t, 3, crt.Items[0].Quantity)
	assert.InDelta(t, 2999.97, crt.Total, 0.001)
}

func TestAddItem_SendsWireBody(t *testing.T) {
	var got map[string]interface{}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/shopping/cart/add", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, c.AddItem(context.Background(), 1, 3, 999.99))
	assert.Equal(t, float64(1), got["productId"])
	assert.Equal(t, float64(3), got["quantity"])
	assert.InDelta(t, 999.99, got["price"].(float64), 0.001)
}

func TestAddItem_OutOfStockRejection(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Product 'Laptop' is out of stock. Available: 2, Requested: 5","status":"OUT_OF_STOCK","productId":1}`))
	}))

	err := c.AddItem(context.Background(), 1, 5, 999.99)
	require.Error(t, err)
	assert.Equal(t, apperr.ValidationRejected, apperr.KindOf(err))
	assert.Equal(t, "Product 'Laptop' is out of stock. Available: 2, Requested: 5", apperr.Reason(err))
}

func TestUpdateItem_QuantityRidesTheQueryString(t *testing.T) {
	var gotPath, gotQuantity string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotQuantity = r.URL.Query().Get("quantity")
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, c.UpdateItem(context.Background(), 9, 4))
	assert.Equal(t, "/api/shopping/cart/update/9", gotPath)
	assert.Equal(t, "4", gotQuantity)
}

func TestRemoveItem_NotFoundIsSuccess(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/shopping/cart/remove/9", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))

	assert.NoError(t, c.RemoveItem(context.Background(), 9))
}

func TestRemoveItem_OtherFailuresPropagate(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := c.RemoveItem(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, apperr.Unknown, apperr.KindOf(err))
}

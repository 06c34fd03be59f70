package main

import (
	"net/http"
	"testing"

	"SweetOrderAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSessionLifecycle(t *testing.T) {
	e := newTestServer(t)

	// first request mints a session id and echoes it back
	rec := doJSON(t, e, http.MethodGet, "/api/cart", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sid := rec.Header().Get(sessionHeader)
	require.NotEmpty(t, sid)

	var resp model.CartResponse
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(0), resp.Total)

	headers := map[string]string{sessionHeader: sid}

	// product 3 (Cupcakes Diversos, 4800) has no size options
	rec = doJSON(t, e, http.MethodPost, "/api/cart", map[string]interface{}{
		"productId": 3,
		"quantity":  2,
	}, headers)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, sid, rec.Header().Get(sessionHeader))

	// same product and size merges into the existing line
	rec = doJSON(t, e, http.MethodPost, "/api/cart", map[string]interface{}{
		"productId": 3,
		"quantity":  1,
	}, headers)
	require.Equal(t, http.StatusCreated, rec.Code)
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, int64(3*4800), resp.Total)

	// product 1 with a size option keeps its own line and overrides the price
	rec = doJSON(t, e, http.MethodPost, "/api/cart", map[string]interface{}{
		"productId": 1,
		"quantity":  1,
		"size":      "Grande",
	}, headers)
	require.Equal(t, http.StatusCreated, rec.Code)
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Items, 2)
	require.NotNil(t, resp.Items[1].SelectedSizeOption)
	assert.Equal(t, "Grande", resp.Items[1].SelectedSizeOption.Name)
	assert.Equal(t, int64(3*4800)+resp.Items[1].SelectedSizeOption.Price, resp.Total)

	// update quantity on the first line
	rec = doJSON(t, e, http.MethodPut, "/api/cart/0", map[string]interface{}{
		"quantity": 1,
	}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	assert.Equal(t, 1, resp.Items[0].Quantity)

	// remove the sized line
	rec = doJSON(t, e, http.MethodDelete, "/api/cart/1", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(4800), resp.Total)

	// clear empties the session entirely
	rec = doJSON(t, e, http.MethodDelete, "/api/cart", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, e, http.MethodGet, "/api/cart", nil, headers)
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Items)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/cart", map[string]interface{}{
		"productId": 5,
		"quantity":  4,
	}, map[string]string{sessionHeader: "session-a"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/cart", nil, map[string]string{sessionHeader: "session-b"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.CartResponse
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Items)
}

func TestAddToCartErrors(t *testing.T) {
	e := newTestServer(t)
	headers := map[string]string{sessionHeader: "errors"}

	t.Run("unknown product", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/cart", map[string]interface{}{
			"productId": 999,
			"quantity":  1,
		}, headers)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown size", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/cart", map[string]interface{}{
			"productId": 1,
			"quantity":  1,
			"size":      "Gigante",
		}, headers)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing product id", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/cart", map[string]interface{}{
			"quantity": 1,
		}, headers)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("index out of range", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodDelete, "/api/cart/7", nil, headers)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric index", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodDelete, "/api/cart/abc", nil, headers)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCheckout(t *testing.T) {
	e := newTestServer(t)

	login := func(t *testing.T) string {
		t.Helper()
		rec := doJSON(t, e, http.MethodPost, "/api/users/login", map[string]interface{}{
			"username": "cliente1",
			"password": "password123",
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Token string `json:"token"`
		}
		decodeBody(t, rec, &body)
		require.NotEmpty(t, body.Token)
		return body.Token
	}

	t.Run("requires authentication", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/cart/checkout", map[string]interface{}{
			"deliveryDate": "2026-09-10",
		}, map[string]string{sessionHeader: "anon"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		token := login(t)
		rec := doJSON(t, e, http.MethodPost, "/api/cart/checkout", map[string]interface{}{
			"deliveryDate": "2026-09-10",
		}, map[string]string{
			sessionHeader:   "empty",
			"Authorization": "Bearer " + token,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("creates an order and clears the cart", func(t *testing.T) {
		token := login(t)
		headers := map[string]string{
			sessionHeader:   "checkout",
			"Authorization": "Bearer " + token,
		}

		rec := doJSON(t, e, http.MethodPost, "/api/cart", map[string]interface{}{
			"productId": 4,
			"quantity":  10,
		}, headers)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, e, http.MethodPost, "/api/cart/checkout", map[string]interface{}{
			"deliveryDate": "2026-09-10",
			"notes":        "entregar de manhã",
		}, headers)
		require.Equal(t, http.StatusCreated, rec.Code)

		var order model.Order
		decodeBody(t, rec, &order)
		assert.Equal(t, int64(1), order.UserID)
		assert.Equal(t, model.OrderStatusPending, order.Status)
		assert.Equal(t, int64(10*3500), order.TotalAmount)
		assert.Equal(t, "2026-09-10", order.DeliveryDate)

		// the order carries the cart lines
		var details model.OrderDetails
		rec = doJSON(t, e, http.MethodGet, "/api/orders/1", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeBody(t, rec, &details)
		require.Len(t, details.Items, 1)
		assert.Equal(t, int64(4), details.Items[0].ProductID)
		assert.Equal(t, 10, details.Items[0].Quantity)

		// cart is empty after checkout
		rec = doJSON(t, e, http.MethodGet, "/api/cart", nil, headers)
		var resp model.CartResponse
		decodeBody(t, rec, &resp)
		assert.Empty(t, resp.Items)
	})
}

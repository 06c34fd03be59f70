package main

import (
	"net/http"
	"testing"

	"SweetOrderAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []model.Product
	decodeBody(t, rec, &products)
	require.Len(t, products, 6)
	assert.Equal(t, "Bolo de Chocolate", products[0].Name)
	assert.True(t, products[0].HasSizeOptions)
	assert.Len(t, products[0].SizeOptions, 3)
}

func TestProductsByCategoryIsCaseSensitive(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/products/category/Bolos", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []model.Product
	decodeBody(t, rec, &products)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Bolos", p.Category)
	}

	// exact match only: a different casing returns an empty list
	rec = doJSON(t, e, http.MethodGet, "/api/products/category/bolos", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &products)
	assert.Empty(t, products)
}

func TestGetProduct(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/products/3", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p model.Product
	decodeBody(t, rec, &p)
	assert.Equal(t, "Cupcakes Diversos", p.Name)
	assert.Equal(t, int64(4800), p.Price)

	rec = doJSON(t, e, http.MethodGet, "/api/products/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/products/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMenus(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/menus", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var menus []model.Menu
	decodeBody(t, rec, &menus)
	require.Len(t, menus, 3)
	assert.Equal(t, "Festas e Aniversários", menus[0].Name)

	rec = doJSON(t, e, http.MethodGet, "/api/menus/2", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/menus/9", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMenuProducts(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/menus/1/products", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []model.Product
	decodeBody(t, rec, &products)
	// Festas e Aniversários links products 1-4
	require.Len(t, products, 4)
	assert.Equal(t, "Bolo de Chocolate", products[0].Name)

	rec = doJSON(t, e, http.MethodGet, "/api/menus/9/products", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package main

import (
	"net/http"

	"SweetOrderAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// registerProductRoutes mounts the catalog read paths:
//
//	GET /products                     -> full catalog
//	GET /products/category/:category  -> exact, case-sensitive match
//	GET /products/:id                 -> single product
func registerProductRoutes(g *echo.Group, cs *services.CatalogService) {
	g.GET("/products", func(c echo.Context) error {
		products, err := cs.ListProducts(c.Request().Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, products)
	})

	g.GET("/products/category/:category", func(c echo.Context) error {
		products, err := cs.ProductsByCategory(c.Request().Context(), c.Param("category"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, products)
	})

	g.GET("/products/:id", func(c echo.Context) error {
		id, err := paramID(c, "id", "product")
		if err != nil {
			return respondError(c, err)
		}
		product, err := cs.GetProduct(c.Request().Context(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, product)
	})
}

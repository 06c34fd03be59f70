package main

import (
	"net/http"

	"SweetOrderAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerMenuRoutes(g *echo.Group, cs *services.CatalogService) {
	g.GET("/menus", func(c echo.Context) error {
		menus, err := cs.ListMenus(c.Request().Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, menus)
	})

	g.GET("/menus/:id", func(c echo.Context) error {
		id, err := paramID(c, "id", "menu")
		if err != nil {
			return respondError(c, err)
		}
		menu, err := cs.GetMenu(c.Request().Context(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, menu)
	})

	g.GET("/menus/:id/products", func(c echo.Context) error {
		id, err := paramID(c, "id", "menu")
		if err != nil {
			return respondError(c, err)
		}
		products, err := cs.ProductsByMenu(c.Request().Context(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, products)
	})
}

package main

import (
	"net/http"

	"SweetOrderAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type addFavoriteRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
}

func registerFavoriteRoutes(g *echo.Group, fs *services.FavoriteService) {
	g.GET("/users/:userId/favorites", func(c echo.Context) error {
		userID, err := paramID(c, "userId", "user")
		if err != nil {
			return respondError(c, err)
		}
		products, err := fs.ListProducts(c.Request().Context(), userID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, products)
	})

	g.POST("/users/:userId/favorites", func(c echo.Context) error {
		userID, err := paramID(c, "userId", "user")
		if err != nil {
			return respondError(c, err)
		}
		req := new(addFavoriteRequest)
		if err := bindAndValidate(c, req); err != nil {
			return respondError(c, err)
		}
		favorite, err := fs.Add(c.Request().Context(), userID, req.ProductID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, favorite)
	})

	g.GET("/users/:userId/favorites/:productId", func(c echo.Context) error {
		userID, err := paramID(c, "userId", "user")
		if err != nil {
			return respondError(c, err)
		}
		productID, err := paramID(c, "productId", "product")
		if err != nil {
			return respondError(c, err)
		}
		isFavorite, err := fs.IsFavorite(c.Request().Context(), userID, productID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]bool{"isFavorite": isFavorite})
	})

	g.DELETE("/users/:userId/favorites/:productId", func(c echo.Context) error {
		userID, err := paramID(c, "userId", "user")
		if err != nil {
			return respondError(c, err)
		}
		productID, err := paramID(c, "productId", "product")
		if err != nil {
			return respondError(c, err)
		}
		if err := fs.Remove(c.Request().Context(), userID, productID); err != nil {
			return respondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

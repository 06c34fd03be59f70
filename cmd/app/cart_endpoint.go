package main

import (
	"net/http"
	"strconv"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/middleware"
	"SweetOrderAPI/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionHeader = "X-Session-Id"

type addCartRequest struct {
	ProductID int64  `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type updateCartRequest struct {
	Quantity *int    `json:"quantity,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type checkoutRequest struct {
	DeliveryDate string  `json:"deliveryDate" validate:"required"`
	Notes        *string `json:"notes,omitempty"`
	AddressID    *int64  `json:"addressId,omitempty"`
}

// sessionID returns the caller's cart session id, minting one when the header
// is absent. The id is always echoed back so clients can persist it.
func sessionID(c echo.Context) string {
	sid := c.Request().Header.Get(sessionHeader)
	if sid == "" {
		sid = uuid.NewString()
	}
	c.Response().Header().Set(sessionHeader, sid)
	return sid
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")

	p.GET("", func(c echo.Context) error {
		resp, err := cs.Get(c.Request().Context(), sessionID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	})

	// add a line; duplicate product+size merges into the existing line
	p.POST("", func(c echo.Context) error {
		req := new(addCartRequest)
		if err := bindAndValidate(c, req); err != nil {
			return respondError(c, err)
		}
		resp, err := cs.Add(c.Request().Context(), sessionID(c), req.ProductID, req.Quantity, req.Size, req.Notes)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, resp)
	})

	p.PUT("/:index", func(c echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return respondError(c, apperr.New(apperr.InvalidInput, "Invalid cart line index"))
		}
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid input data"})
		}
		sid := sessionID(c)
		ctx := c.Request().Context()
		if req.Quantity != nil {
			if _, err := cs.SetQuantity(ctx, sid, index, *req.Quantity); err != nil {
				return respondError(c, err)
			}
		}
		if req.Notes != nil {
			if _, err := cs.SetNotes(ctx, sid, index, *req.Notes); err != nil {
				return respondError(c, err)
			}
		}
		resp, err := cs.Get(ctx, sid)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	})

	p.DELETE("/:index", func(c echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return respondError(c, apperr.New(apperr.InvalidInput, "Invalid cart line index"))
		}
		resp, err := cs.Remove(c.Request().Context(), sessionID(c), index)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	})

	p.DELETE("", func(c echo.Context) error {
		if err := cs.Clear(c.Request().Context(), sessionID(c)); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})

	// checkout needs an authenticated user for the order's owner
	p.POST("/checkout", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "unauthenticated"})
		}
		req := new(checkoutRequest)
		if err := bindAndValidate(c, req); err != nil {
			return respondError(c, err)
		}
		order, err := cs.Checkout(c.Request().Context(), sessionID(c), claims.UserID, req.DeliveryDate, req.Notes, req.AddressID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, order)
	}, middleware.JWTMiddleware())
}

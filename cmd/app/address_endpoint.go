package main

import (
	"net/http"

	"SweetOrderAPI/internal/model"
	"SweetOrderAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createAddressRequest struct {
	UserID       int64   `json:"userId" validate:"required"`
	Street       string  `json:"street" validate:"required"`
	Number       string  `json:"number" validate:"required"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood string  `json:"neighborhood" validate:"required"`
	City         string  `json:"city" validate:"required"`
	State        string  `json:"state" validate:"required"`
	Zipcode      string  `json:"zipcode" validate:"required"`
	IsDefault    bool    `json:"isDefault"`
}

func registerAddressRoutes(g *echo.Group, as *services.AddressService) {
	g.GET("/users/:userId/addresses", func(c echo.Context) error {
		userID, err := paramID(c, "userId", "user")
		if err != nil {
			return respondError(c, err)
		}
		addresses, err := as.ListByUser(c.Request().Context(), userID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, addresses)
	})

	g.GET("/addresses/:id", func(c echo.Context) error {
		id, err := paramID(c, "id", "address")
		if err != nil {
			return respondError(c, err)
		}
		address, err := as.Get(c.Request().Context(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, address)
	})

	g.POST("/addresses", func(c echo.Context) error {
		req := new(createAddressRequest)
		if err := bindAndValidate(c, req); err != nil {
			return respondError(c, err)
		}
		address, err := as.Create(c.Request().Context(), &model.Address{
			UserID:       req.UserID,
			Street:       req.Street,
			Number:       req.Number,
			Complement:   req.Complement,
			Neighborhood: req.Neighborhood,
			City:         req.City,
			State:        req.State,
			Zipcode:      req.Zipcode,
			IsDefault:    req.IsDefault,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, address)
	})

	// PATCH semantics: only the provided fields are merged
	g.PATCH("/addresses/:id", func(c echo.Context) error {
		id, err := paramID(c, "id", "address")
		if err != nil {
			return respondError(c, err)
		}
		upd := new(model.AddressUpdate)
		if err := c.Bind(upd); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid input data"})
		}
		address, err := as.Update(c.Request().Context(), id, upd)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, address)
	})

	g.DELETE("/addresses/:id", func(c echo.Context) error {
		id, err := paramID(c, "id", "address")
		if err != nil {
			return respondError(c, err)
		}
		if err := as.Delete(c.Request().Context(), id); err != nil {
			return respondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

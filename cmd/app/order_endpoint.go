package main

import (
	"net/http"

	"SweetOrderAPI/internal/model"
	"SweetOrderAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type orderItemRequest struct {
	ProductID int64   `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Size      *string `json:"size,omitempty"`
	Price     int64   `json:"price" validate:"min=0"`
	Notes     *string `json:"notes,omitempty"`
}

type createOrderRequest struct {
	UserID       int64              `json:"userId" validate:"required"`
	TotalAmount  int64              `json:"totalAmount" validate:"required,gt=0"`
	DeliveryDate string             `json:"deliveryDate" validate:"required"`
	Notes        *string            `json:"notes,omitempty"`
	AddressID    *int64             `json:"addressId,omitempty"`
	Items        []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func registerOrderRoutes(g *echo.Group, svc *services.OrderService) {
	g.POST("/orders", func(c echo.Context) error {
		req := new(createOrderRequest)
		if err := bindAndValidate(c, req); err != nil {
			return respondError(c, err)
		}
		sub := &model.OrderSubmission{
			UserID:       req.UserID,
			TotalAmount:  req.TotalAmount,
			DeliveryDate: req.DeliveryDate,
			Notes:        req.Notes,
			AddressID:    req.AddressID,
			Items:        make([]model.SubmissionItem, 0, len(req.Items)),
		}
		for _, item := range req.Items {
			sub.Items = append(sub.Items, model.SubmissionItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Size:      item.Size,
				Price:     item.Price,
				Notes:     item.Notes,
			})
		}
		order, err := svc.Create(c.Request().Context(), sub)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, order)
	})

	g.GET("/users/:userId/orders", func(c echo.Context) error {
		userID, err := paramID(c, "userId", "user")
		if err != nil {
			return respondError(c, err)
		}
		orders, err := svc.ListByUser(c.Request().Context(), userID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, orders)
	})

	g.GET("/orders/:id", func(c echo.Context) error {
		id, err := paramID(c, "id", "order")
		if err != nil {
			return respondError(c, err)
		}
		details, err := svc.Details(c.Request().Context(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, details)
	})
}

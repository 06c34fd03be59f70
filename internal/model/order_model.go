package model

import "time"

const OrderStatusPending = "pending"

type Order struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Status       string    `json:"status"`
	TotalAmount  int64     `json:"totalAmount"`
	CreatedAt    time.Time `json:"createdAt"`
	DeliveryDate string    `json:"deliveryDate"`
	Notes        *string   `json:"notes,omitempty"`
	AddressID    *int64    `json:"addressId,omitempty"`
}

// OrderItem snapshots the effective price at order time, independent of
// later catalog changes.
type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size,omitempty"`
	Price     int64   `json:"price"`
	Notes     *string `json:"notes,omitempty"`
}

// OrderProduct is a catalog product enriched with the line details of the
// order item that referenced it.
type OrderProduct struct {
	Product
	Quantity int     `json:"quantity"`
	Size     *string `json:"size,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// OrderDetails is returned when fetching a single order.
type OrderDetails struct {
	Order    *Order         `json:"order"`
	Items    []OrderItem    `json:"items"`
	Products []OrderProduct `json:"products"`
}

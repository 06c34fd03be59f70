package model

// CartLine is a session-scoped in-progress order line. It is never persisted
// to the order ledger; checkout promotes it to an OrderItem.
type CartLine struct {
	Product            Product     `json:"product"`
	Quantity           int         `json:"quantity"`
	Size               string      `json:"size,omitempty"`
	Notes              string      `json:"notes,omitempty"`
	SelectedSizeOption *SizeOption `json:"selectedSizeOption,omitempty"`
}

// SubmissionItem is one line of an order submission payload.
type SubmissionItem struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size,omitempty"`
	Price     int64   `json:"price"`
	Notes     *string `json:"notes,omitempty"`
}

// OrderSubmission is the wire payload accepted by the order ledger.
type OrderSubmission struct {
	UserID       int64            `json:"userId"`
	TotalAmount  int64            `json:"totalAmount"`
	DeliveryDate string           `json:"deliveryDate"`
	Notes        *string          `json:"notes,omitempty"`
	AddressID    *int64           `json:"addressId,omitempty"`
	Items        []SubmissionItem `json:"items"`
}

// CartResponse is returned when calling GET /api/cart.
type CartResponse struct {
	Items []CartLine `json:"items"`
	Total int64      `json:"total"`
}

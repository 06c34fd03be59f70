package model

// SizeOption is a per-product size variant whose price overrides the base price.
type SizeOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// Product prices are integer minor currency units (cents).
type Product struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Price          int64        `json:"price"`
	Category       string       `json:"category"`
	ImageURL       string       `json:"imageUrl"`
	HasSizeOptions bool         `json:"hasSizeOptions"`
	SizeOptions    []SizeOption `json:"sizeOptions"`
}

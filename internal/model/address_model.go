package model

type Address struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Zipcode      string  `json:"zipcode"`
	IsDefault    bool    `json:"isDefault"`
}

// AddressUpdate carries the fields of a partial update; nil means "keep".
type AddressUpdate struct {
	Street       *string `json:"street,omitempty"`
	Number       *string `json:"number,omitempty"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Zipcode      *string `json:"zipcode,omitempty"`
	IsDefault    *bool   `json:"isDefault,omitempty"`
}

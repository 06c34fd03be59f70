package model

type Menu struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// MenuProduct links a product into a menu; a product may appear in many menus.
type MenuProduct struct {
	ID        int64 `json:"id"`
	MenuID    int64 `json:"menuId"`
	ProductID int64 `json:"productId"`
}

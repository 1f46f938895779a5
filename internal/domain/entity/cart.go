package entity

import "time"

// Cart is the zero-or-one shopping cart owned by a user.
type Cart struct {
	ID         int64      `json:"cart_id"`
	UserID     int64      `json:"user_id"`
	TotalItems int        `json:"total_items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// CartItem is one (product, quantity) line. The same product may appear on
// several lines; add never merges.
type CartItem struct {
	ID        int64     `json:"cart_item_id"`
	CartID    int64     `json:"cart_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

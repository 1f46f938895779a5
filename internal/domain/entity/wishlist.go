package entity

import "time"

// Wishlist mirrors the cart container shape for saved-for-later lines.
type Wishlist struct {
	ID        int64      `json:"wishlist_id"`
	UserID    int64      `json:"user_id"`
	Name      string     `json:"name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type WishlistItem struct {
	ID         int64     `json:"wishlist_item_id"`
	WishlistID int64     `json:"wishlist_id"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	AddedAt    time.Time `json:"added_at"`
}

package repository

import (
	"context"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
)

// CartRepository manages the cart container and its lines. Item mutations
// are always scoped by both the item id and the owning cart id, so a line
// belonging to another cart is reported as not found.
type CartRepository interface {
	CreateForUser(ctx context.Context, userID int64) (*entity.Cart, error)
	GetByID(ctx context.Context, id int64) (*entity.Cart, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.Cart, error)
	ListItems(ctx context.Context, cartID int64) ([]entity.CartItem, error)
	AddItem(ctx context.Context, item *entity.CartItem) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID int64) error
}

// WishlistRepository mirrors CartRepository for the wishlist container.
type WishlistRepository interface {
	CreateForUser(ctx context.Context, userID int64) (*entity.Wishlist, error)
	GetByID(ctx context.Context, id int64) (*entity.Wishlist, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.Wishlist, error)
	ListItems(ctx context.Context, wishlistID int64) ([]entity.WishlistItem, error)
	AddItem(ctx context.Context, item *entity.WishlistItem) error
	UpdateItemQuantity(ctx context.Context, wishlistID, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, wishlistID, itemID int64) error
}

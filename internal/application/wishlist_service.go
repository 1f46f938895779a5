package application

import (
	"context"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
)

// WishlistService mirrors CartService over the wishlist container; the two
// share the same line-item rules.
type WishlistService struct {
	Wishlists repo.WishlistRepository
	Products  repo.ProductRepository
}

func NewWishlistService(wishlists repo.WishlistRepository, products repo.ProductRepository) *WishlistService {
	return &WishlistService{Wishlists: wishlists, Products: products}
}

func (s *WishlistService) ItemsForUser(ctx context.Context, userID int64) ([]entity.WishlistItem, error) {
	w, err := s.Wishlists.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Wishlists.ListItems(ctx, w.ID)
}

func (s *WishlistService) AddItem(ctx context.Context, wishlistID, productID int64, quantity int) (*entity.WishlistItem, error) {
	if _, err := s.Wishlists.GetByID(ctx, wishlistID); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, invalidField("quantity", "must be at least 1")
	}
	ok, err := s.Products.Exists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalidField("product_id", "does not reference an existing product")
	}

	item := &entity.WishlistItem{WishlistID: wishlistID, ProductID: productID, Quantity: quantity}
	if err := s.Wishlists.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *WishlistService) UpdateItemQuantity(ctx context.Context, wishlistID, itemID int64, quantity int) error {
	if _, err := s.Wishlists.GetByID(ctx, wishlistID); err != nil {
		return err
	}
	if quantity < 1 {
		return invalidField("quantity", "must be at least 1")
	}
	return s.Wishlists.UpdateItemQuantity(ctx, wishlistID, itemID, quantity)
}

func (s *WishlistService) RemoveItem(ctx context.Context, wishlistID, itemID int64) error {
	if _, err := s.Wishlists.GetByID(ctx, wishlistID); err != nil {
		return err
	}
	return s.Wishlists.RemoveItem(ctx, wishlistID, itemID)
}

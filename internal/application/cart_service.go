package application

import (
	"context"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
)

type CartService struct {
	Carts    repo.CartRepository
	Products repo.ProductRepository
}

func NewCartService(carts repo.CartRepository, products repo.ProductRepository) *CartService {
	return &CartService{Carts: carts, Products: products}
}

// ItemsForUser returns the line items of the user's cart.
func (s *CartService) ItemsForUser(ctx context.Context, userID int64) ([]entity.CartItem, error) {
	cart, err := s.Carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Carts.ListItems(ctx, cart.ID)
}

// AddItem appends a new line; a product already in the cart gets a second
// line rather than a merged quantity.
func (s *CartService) AddItem(ctx context.Context, cartID, productID int64, quantity int) (*entity.CartItem, error) {
	if _, err := s.Carts.GetByID(ctx, cartID); err != nil {
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

	item := &entity.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
	if err := s.Carts.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemQuantity changes one line, scoped to the owning cart: a line id
// that exists under a different cart is not found.
func (s *CartService) UpdateItemQuantity(ctx context.Context, cartID, itemID int64, quantity int) error {
	if _, err := s.Carts.GetByID(ctx, cartID); err != nil {
		return err
	}
	if quantity < 1 {
		return invalidField("quantity", "must be at least 1")
	}
	return s.Carts.UpdateItemQuantity(ctx, cartID, itemID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID int64) error {
	if _, err := s.Carts.GetByID(ctx, cartID); err != nil {
		return err
	}
	return s.Carts.RemoveItem(ctx, cartID, itemID)
}

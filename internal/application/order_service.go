package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
)

type OrderService struct {
	Orders   repo.OrderRepository
	Users    repo.UserRepository
	Products repo.ProductRepository
}

func NewOrderService(orders repo.OrderRepository, users repo.UserRepository, products repo.ProductRepository) *OrderService {
	return &OrderService{Orders: orders, Users: users, Products: products}
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
}

type CreateOrderInput struct {
	UserID          int64
	OrderDate       time.Time
	Status          string
	TotalAmount     decimal.Decimal
	Items           []OrderItemInput
	ShippingAddress string
	ShippingDate    *time.Time
	TrackingNumber  *string
}

// Create validates every referenced row up front, then writes the order,
// its N line items, and the shipping record in one transaction.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*entity.Order, error) {
	if _, err := s.Users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, invalidField("user_id", "does not reference an existing user")
		}
		return nil, err
	}
	for i, it := range in.Items {
		ok, err := s.Products.Exists(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, invalidField(fmt.Sprintf("order_items[%d].product_id", i), "does not reference an existing product")
		}
		if it.Quantity < 1 {
			return nil, invalidField(fmt.Sprintf("order_items[%d].quantity", i), "must be at least 1")
		}
	}

	o := &entity.Order{
		UserID:      in.UserID,
		OrderDate:   in.OrderDate,
		Status:      in.Status,
		TotalAmount: in.TotalAmount,
	}
	items := make([]entity.OrderItem, len(in.Items))
	for i, it := range in.Items {
		items[i] = entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price}
	}
	ship := &entity.Shipping{
		Address:        in.ShippingAddress,
		ShippingDate:   in.ShippingDate,
		TrackingNumber: in.TrackingNumber,
	}
	if err := s.Orders.CreateWithItems(ctx, o, items, ship); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*entity.Order, error) {
	return s.Orders.GetByID(ctx, id)
}

// ListForUser returns the order headers belonging to one user.
func (s *OrderService) ListForUser(ctx context.Context, userID int64) ([]entity.Order, error) {
	return s.Orders.ListByUser(ctx, userID)
}

type UpdateOrderInput struct {
	Status      string
	TotalAmount decimal.Decimal
}

func (s *OrderService) Update(ctx context.Context, id int64, in UpdateOrderInput) (*entity.Order, error) {
	o, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Status = in.Status
	o.TotalAmount = in.TotalAmount
	if err := s.Orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.Orders.Delete(ctx, id)
}

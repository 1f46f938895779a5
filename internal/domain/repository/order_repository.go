package repository

import (
	"context"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
)

// OrderRepository persists orders together with their line items and
// shipping record. CreateWithItems must be atomic: either the order, all
// items, and the shipping row commit, or none of them do.
type OrderRepository interface {
	CreateWithItems(ctx context.Context, o *entity.Order, items []entity.OrderItem, ship *entity.Shipping) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Order, error)
	Update(ctx context.Context, o *entity.Order) error
	Delete(ctx context.Context, id int64) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	ListByOrder(ctx context.Context, orderID int64) ([]entity.Payment, error)
}

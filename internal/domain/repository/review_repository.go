package repository

import (
	"context"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id int64) (*entity.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]entity.Review, error)
	Update(ctx context.Context, r *entity.Review) error
	Delete(ctx context.Context, id int64) error
}

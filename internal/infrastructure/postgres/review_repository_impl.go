package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	"github.com/nlefevre/gocommerce/internal/domain/repository"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *entity.Review) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reviews (product_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING review_id
	`, rev.ProductID, rev.UserID, rev.Rating, rev.Comment)
	return row.Scan(&rev.ID)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*entity.Review, error) {
	rev := &entity.Review{}
	row := r.pool.QueryRow(ctx, `
		SELECT review_id, product_id, user_id, rating, COALESCE(comment, '')
		FROM reviews
		WHERE review_id = $1
	`, id)
	if err := row.Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.Rating, &rev.Comment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rev, nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]entity.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT review_id, product_id, user_id, rating, COALESCE(comment, '')
		FROM reviews
		WHERE product_id = $1
		ORDER BY review_id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Review, 0)
	for rows.Next() {
		var rev entity.Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.Rating, &rev.Comment); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

func (r *ReviewRepository) Update(ctx context.Context, rev *entity.Review) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE reviews SET rating = $1, comment = $2 WHERE review_id = $3
	`, rev.Rating, rev.Comment, rev.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE review_id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)

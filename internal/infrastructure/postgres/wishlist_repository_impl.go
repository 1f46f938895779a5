package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	"github.com/nlefevre/gocommerce/internal/domain/repository"
)

type WishlistRepository struct {
	pool *pgxpool.Pool
}

func NewWishlistRepository(pool *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{pool: pool}
}

func (r *WishlistRepository) CreateForUser(ctx context.Context, userID int64) (*entity.Wishlist, error) {
	w := &entity.Wishlist{UserID: userID}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO wishlists (user_id)
		VALUES ($1)
		RETURNING wishlist_id, created_at, updated_at
	`, userID)
	if err := row.Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *WishlistRepository) GetByID(ctx context.Context, id int64) (*entity.Wishlist, error) {
	return r.get(ctx, `WHERE wishlist_id = $1`, id)
}

func (r *WishlistRepository) GetByUserID(ctx context.Context, userID int64) (*entity.Wishlist, error) {
	return r.get(ctx, `WHERE user_id = $1`, userID)
}

func (r *WishlistRepository) get(ctx context.Context, where string, arg any) (*entity.Wishlist, error) {
	w := &entity.Wishlist{}
	row := r.pool.QueryRow(ctx, `
		SELECT wishlist_id, user_id, COALESCE(name, ''), created_at, updated_at
		FROM wishlists `+where, arg)
	if err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (r *WishlistRepository) ListItems(ctx context.Context, wishlistID int64) ([]entity.WishlistItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT wishlist_item_id, wishlist_id, product_id, quantity, added_at
		FROM wishlist_items
		WHERE wishlist_id = $1
		ORDER BY wishlist_item_id
	`, wishlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.WishlistItem, 0)
	for rows.Next() {
		var it entity.WishlistItem
		if err := rows.Scan(&it.ID, &it.WishlistID, &it.ProductID, &it.Quantity, &it.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *WishlistRepository) AddItem(ctx context.Context, item *entity.WishlistItem) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO wishlist_items (wishlist_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING wishlist_item_id, added_at
	`, item.WishlistID, item.ProductID, item.Quantity)
	return row.Scan(&item.ID, &item.AddedAt)
}

func (r *WishlistRepository) UpdateItemQuantity(ctx context.Context, wishlistID, itemID int64, quantity int) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE wishlist_items SET quantity = $1 WHERE wishlist_item_id = $2 AND wishlist_id = $3
	`, quantity, itemID, wishlistID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *WishlistRepository) RemoveItem(ctx context.Context, wishlistID, itemID int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM wishlist_items WHERE wishlist_item_id = $1 AND wishlist_id = $2
	`, itemID, wishlistID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.WishlistRepository = (*WishlistRepository)(nil)

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	"github.com/nlefevre/gocommerce/internal/domain/repository"
)

// Item mutations filter on both the line id and the owning cart id, so a
// line that exists under another cart resolves as not found.

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) CreateForUser(ctx context.Context, userID int64) (*entity.Cart, error) {
	c := &entity.Cart{UserID: userID}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO shopping_cart (user_id, total_items)
		VALUES ($1, 0)
		RETURNING cart_id, total_items, created_at, updated_at
	`, userID)
	if err := row.Scan(&c.ID, &c.TotalItems, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CartRepository) GetByID(ctx context.Context, id int64) (*entity.Cart, error) {
	return r.get(ctx, `WHERE cart_id = $1`, id)
}

func (r *CartRepository) GetByUserID(ctx context.Context, userID int64) (*entity.Cart, error) {
	return r.get(ctx, `WHERE user_id = $1`, userID)
}

func (r *CartRepository) get(ctx context.Context, where string, arg any) (*entity.Cart, error) {
	c := &entity.Cart{}
	row := r.pool.QueryRow(ctx, `
		SELECT cart_id, user_id, total_items, created_at, updated_at
		FROM shopping_cart `+where, arg)
	if err := row.Scan(&c.ID, &c.UserID, &c.TotalItems, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CartRepository) ListItems(ctx context.Context, cartID int64) ([]entity.CartItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cart_item_id, cart_id, product_id, quantity, added_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY cart_item_id
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.CartItem, 0)
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// AddItem always appends a new line, even when the product is already in
// the cart. The counter on the container is kept in step.
func (r *CartRepository) AddItem(ctx context.Context, item *entity.CartItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING cart_item_id, added_at
	`, item.CartID, item.ProductID, item.Quantity)
	if err := row.Scan(&item.ID, &item.AddedAt); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE shopping_cart SET total_items = total_items + 1, updated_at = now() WHERE cart_id = $1
	`, item.CartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *CartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID int64, quantity int) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE cart_items SET quantity = $1 WHERE cart_item_id = $2 AND cart_id = $3
	`, quantity, itemID, cartID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, cartID, itemID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		DELETE FROM cart_items WHERE cart_item_id = $1 AND cart_id = $2
	`, itemID, cartID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	if _, err := tx.Exec(ctx, `
		UPDATE shopping_cart SET total_items = GREATEST(total_items - 1, 0), updated_at = now() WHERE cart_id = $1
	`, cartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

var _ repository.CartRepository = (*CartRepository)(nil)

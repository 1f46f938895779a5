package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	"github.com/nlefevre/gocommerce/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// CreateWithItems writes the order, its line items, and the shipping record
// in a single transaction. A failed insert rolls back everything.
func (r *OrderRepository) CreateWithItems(ctx context.Context, o *entity.Order, items []entity.OrderItem, ship *entity.Shipping) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, order_date, status, total_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING order_id
	`, o.UserID, o.OrderDate, o.Status, o.TotalAmount.String())
	if err := row.Scan(&o.ID); err != nil {
		return err
	}

	for i := range items {
		items[i].OrderID = o.ID
		row := tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING order_item_id
		`, o.ID, items[i].ProductID, items[i].Quantity, items[i].Price.String())
		if err := row.Scan(&items[i].ID); err != nil {
			return err
		}
	}

	ship.OrderID = o.ID
	row = tx.QueryRow(ctx, `
		INSERT INTO shipping (order_id, shipping_address, shipping_date, tracking_number)
		VALUES ($1, $2, $3, $4)
		RETURNING shipping_id
	`, o.ID, ship.Address, ship.ShippingDate, ship.TrackingNumber)
	if err := row.Scan(&ship.ID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	o.Items = items
	o.Shipping = ship
	return nil
}

// GetByID loads the order with its items and shipping record attached.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	o := &entity.Order{}
	var total string
	row := r.pool.QueryRow(ctx, `
		SELECT order_id, user_id, order_date, status, total_amount::text
		FROM orders
		WHERE order_id = $1
	`, id)
	if err := row.Scan(&o.ID, &o.UserID, &o.OrderDate, &o.Status, &total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	d, err := decimal.NewFromString(total)
	if err != nil {
		return nil, err
	}
	o.TotalAmount = d

	rows, err := r.pool.Query(ctx, `
		SELECT order_item_id, order_id, product_id, quantity, price::text
		FROM order_items
		WHERE order_id = $1
		ORDER BY order_item_id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	o.Items = make([]entity.OrderItem, 0)
	for rows.Next() {
		var it entity.OrderItem
		var price string
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &price); err != nil {
			return nil, err
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ship := &entity.Shipping{}
	row = r.pool.QueryRow(ctx, `
		SELECT shipping_id, order_id, shipping_address, shipping_date, tracking_number
		FROM shipping
		WHERE order_id = $1
	`, id)
	switch err := row.Scan(&ship.ID, &ship.OrderID, &ship.Address, &ship.ShippingDate, &ship.TrackingNumber); {
	case err == nil:
		o.Shipping = ship
	case errors.Is(err, pgx.ErrNoRows):
		// order predates shipping or was created without one
	default:
		return nil, err
	}
	return o, nil
}

// ListByUser returns the user's order headers, newest first. Items and
// shipping are loaded per order through GetByID, not here.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, user_id, order_date, status, total_amount::text
		FROM orders
		WHERE user_id = $1
		ORDER BY order_id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Order, 0)
	for rows.Next() {
		var o entity.Order
		var total string
		if err := rows.Scan(&o.ID, &o.UserID, &o.OrderDate, &o.Status, &total); err != nil {
			return nil, err
		}
		if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrderRepository) Update(ctx context.Context, o *entity.Order) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = $1, total_amount = $2 WHERE order_id = $3
	`, o.Status, o.TotalAmount.String(), o.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO payments (order_id, payment_date, amount, payment_method, provider_intent_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING payment_id
	`, p.OrderID, p.PaymentDate, p.Amount.String(), p.PaymentMethod, p.ProviderIntentID)
	return row.Scan(&p.ID)
}

func (r *PaymentRepository) ListByOrder(ctx context.Context, orderID int64) ([]entity.Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT payment_id, order_id, payment_date, amount::text, payment_method, COALESCE(provider_intent_id, '')
		FROM payments
		WHERE order_id = $1
		ORDER BY payment_id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Payment, 0)
	for rows.Next() {
		var p entity.Payment
		var amount string
		if err := rows.Scan(&p.ID, &p.OrderID, &p.PaymentDate, &amount, &p.PaymentMethod, &p.ProviderIntentID); err != nil {
			return nil, err
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order groups line items and a single shipping record under one purchase.
// Items and Shipping are attached eagerly when an order is loaded.
type Order struct {
	ID          int64           `json:"order_id"`
	UserID      int64           `json:"user_id"`
	OrderDate   time.Time       `json:"order_date"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []OrderItem     `json:"order_items,omitempty"`
	Shipping    *Shipping       `json:"shipping,omitempty"`
}

// OrderItem records the quantity and the unit price at purchase time.
// Price is immutable after creation.
type OrderItem struct {
	ID        int64           `json:"order_item_id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Shipping is one-to-one with an order.
type Shipping struct {
	ID             int64      `json:"shipping_id"`
	OrderID        int64      `json:"order_id"`
	Address        string     `json:"shipping_address"`
	ShippingDate   *time.Time `json:"shipping_date,omitempty"`
	TrackingNumber *string    `json:"tracking_number,omitempty"`
}

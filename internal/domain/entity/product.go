package entity

import "github.com/shopspring/decimal"

// Product is a catalog entry. Price is a fixed-point decimal; order items
// snapshot it at purchase time and never follow later price changes.
type Product struct {
	ID            int64           `json:"product_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	ImageURL      string          `json:"image_url,omitempty"`
}

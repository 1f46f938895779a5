package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records one payment-intent creation against an order. A second
// pay call on the same order creates a second, unrelated row.
type Payment struct {
	ID               int64           `json:"payment_id"`
	OrderID          int64           `json:"order_id"`
	PaymentDate      time.Time       `json:"payment_date"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMethod    string          `json:"payment_method"`
	ProviderIntentID string          `json:"provider_intent_id,omitempty"`
}

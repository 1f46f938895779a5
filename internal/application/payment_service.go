package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
)

// PaymentGateway is the external processor boundary. The concrete Stripe
// implementation lives in infrastructure.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, description string) (intentID, clientSecret string, err error)
}

type PaymentService struct {
	Orders   repo.OrderRepository
	Payments repo.PaymentRepository
	Gateway  PaymentGateway
	Logger   *logrus.Logger
}

func NewPaymentService(orders repo.OrderRepository, payments repo.PaymentRepository, gw PaymentGateway, logger *logrus.Logger) *PaymentService {
	return &PaymentService{Orders: orders, Payments: payments, Gateway: gw, Logger: logger}
}

// Pay loads the order, converts its total to the smallest currency unit,
// creates a payment intent, and records the attempt. There is no
// idempotency key: paying the same order twice creates two intents.
func (s *PaymentService) Pay(ctx context.Context, orderID int64) (*entity.Payment, string, error) {
	o, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", err
	}

	amountCents := o.TotalAmount.Shift(2).IntPart()
	intentID, clientSecret, err := s.Gateway.CreateIntent(ctx, amountCents, fmt.Sprintf("Payment for order #%d", o.ID))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("order_id", o.ID).Error("payment intent creation failed")
		}
		return nil, "", err
	}

	p := &entity.Payment{
		OrderID:          o.ID,
		PaymentDate:      time.Now(),
		Amount:           o.TotalAmount,
		PaymentMethod:    "card",
		ProviderIntentID: intentID,
	}
	if err := s.Payments.Create(ctx, p); err != nil {
		return nil, "", err
	}
	return p, clientSecret, nil
}

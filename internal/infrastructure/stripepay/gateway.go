package stripepay

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Gateway creates payment intents against the Stripe API. Amounts are in
// the smallest currency unit (cents).
type Gateway struct {
	api      *client.API
	currency string
}

func New(secretKey, currency string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api, currency: currency}
}

// CreateIntent requests a card payment intent and returns the intent id and
// the client secret the caller completes payment with.
func (g *Gateway) CreateIntent(ctx context.Context, amountCents int64, description string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Description:        stripe.String(description),
	}
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", "", err
	}
	return pi.ID, pi.ClientSecret, nil
}

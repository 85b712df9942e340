package payment

import (
	"context"
	"fmt"

	"bookslot/internal/pkg/config"
	"bookslot/internal/usecase/commands"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// StripeGateway creates payment intents against Stripe. Amounts arrive in
// whole currency units and are converted to the minor unit Stripe expects.
type StripeGateway struct {
	enabled bool
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	if cfg.Enabled() {
		stripe.Key = cfg.SecretKey
	}
	return &StripeGateway{enabled: cfg.Enabled()}
}

func (g *StripeGateway) Enabled() bool {
	return g.enabled
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int, currency string, metadata map[string]string) (*commands.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount) * 100),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &commands.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
		Currency:     currency,
	}, nil
}

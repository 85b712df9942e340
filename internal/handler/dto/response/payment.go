package response

import "bookslot/internal/usecase/commands"

type PaymentIntentResponse struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int    `json:"amount"`
	Currency     string `json:"currency"`
}

func FromPaymentIntent(pi *commands.PaymentIntent) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     pi.Currency,
	}
}

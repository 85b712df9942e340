package commands

import (
	"context"

	"bookslot/internal/infra"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPaymentsDisabled = errs.New("payment processing is not configured")

type CreateIntentInput struct {
	ServiceID uuid.UUID
}

type PaymentCommands interface {
	CreateIntent(ctx context.Context, in CreateIntentInput) (*PaymentIntent, error)
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	currency string
}

func NewPaymentUseCase(uow shared.UnitOfWork, gateway PaymentGateway, currency string) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, gateway: gateway, currency: currency}
}

// CreateIntent opens a payment intent for a service's list price. The amount
// comes from the catalog, never from the request, so a client cannot open an
// intent for an arbitrary figure.
func (uc *paymentUseCaseImpl) CreateIntent(ctx context.Context, in CreateIntentInput) (*PaymentIntent, error) {
	if !uc.gateway.Enabled() {
		return nil, ErrPaymentsDisabled
	}

	svc, err := uc.uow.CommandReads().ServiceByID(ctx, in.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotAvailable
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !svc.IsActive {
		return nil, errs.ErrServiceNotAvailable
	}

	intent, err := uc.gateway.CreateIntent(ctx, svc.Price, uc.currency, map[string]string{
		"service_id":   svc.ID.String(),
		"service_name": svc.Name,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment intent")
	}
	return intent, nil
}

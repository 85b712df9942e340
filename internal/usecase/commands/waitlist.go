package commands

import (
	"context"

	"bookslot/internal/domain/appointment"
	"bookslot/internal/domain/waitlist"
	"bookslot/internal/infra"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/usecase/queries"
	"bookslot/internal/usecase/shared"

	"github.com/google/uuid"
)

type EnqueueWaitlistInput struct {
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	ServiceID         uuid.UUID
	LocationID        *uuid.UUID
	Date              string
	PreferredTimeSlot string
}

type WaitlistCommands interface {
	Enqueue(ctx context.Context, in EnqueueWaitlistInput) (*queries.WaitlistEntryView, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type waitlistUseCaseImpl struct {
	uow          shared.UnitOfWork
	waitlistQrys queries.WaitlistQueries
	broadcaster  Broadcaster
}

func NewWaitlistUseCase(uow shared.UnitOfWork, waitlistQrys queries.WaitlistQueries, broadcaster Broadcaster) WaitlistCommands {
	return &waitlistUseCaseImpl{
		uow:          uow,
		waitlistQrys: waitlistQrys,
		broadcaster:  broadcaster,
	}
}

func (uc *waitlistUseCaseImpl) Enqueue(ctx context.Context, in EnqueueWaitlistInput) (*queries.WaitlistEntryView, error) {
	customer, err := appointment.NewCustomer(in.CustomerName, in.CustomerEmail, in.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var entryID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, derr := tx.Reads().ServiceByID(ctx, in.ServiceID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrServiceNotAvailable
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		if !svc.IsActive {
			return errs.ErrServiceNotAvailable
		}

		if in.LocationID != nil {
			loc, lerr := tx.Reads().LocationByID(ctx, *in.LocationID)
			if lerr != nil {
				if infra.IsKind(lerr, infra.KindNotFound) {
					return errs.ErrLocationNotAvailable
				}
				return errs.Mark(lerr, errs.ErrDatabaseOperationFailed)
			}
			if !loc.IsActive {
				return errs.ErrLocationNotAvailable
			}
		}

		entry, derr := waitlist.NewEntry(customer, in.ServiceID, in.LocationID, in.Date, in.PreferredTimeSlot)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		if derr := tx.Waitlist().Create(ctx, tx.DB(), entry); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		entryID = entry.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.waitlistQrys.GetByID(ctx, entryID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	uc.broadcaster.Broadcast(ctx, EventWaitlistUpdated, view)
	return view, nil
}

func (uc *waitlistUseCaseImpl) Remove(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Waitlist().Delete(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrWaitlistEntryMissing
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.broadcaster.Broadcast(ctx, EventWaitlistUpdated, map[string]any{"id": id, "removed": true})
	return nil
}

package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
)

// CancelShipmentRequestCommandHandler cancels requests and records the reason.
type CancelShipmentRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewCancelShipmentRequestCommandHandler(uowFactory RequestUoWFactory) CancelShipmentRequestCommandHandler {
	return CancelShipmentRequestCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrValueIsInvalid for delivered requests. Cancelling an
// already cancelled request keeps the original reason.
func (h CancelShipmentRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CancelShipmentRequestCommand,
) (*shipment.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRequestRepository()
	req, err := repo.GetForUpdate(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	if err = req.Cancel(cmd.Reason()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}

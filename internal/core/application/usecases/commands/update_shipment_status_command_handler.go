package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
)

// UpdateShipmentStatusCommandHandler applies status changes under a row lock.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewUpdateShipmentStatusCommandHandler(uowFactory RequestUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound for an unknown request and
// errs.ErrValueIsInvalid when the transition is not allowed. Setting the
// current status again succeeds without changing anything else.
func (h UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
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

	if err = req.ChangeStatus(cmd.Status()); err != nil {
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

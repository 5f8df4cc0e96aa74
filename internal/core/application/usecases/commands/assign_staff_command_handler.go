package commands

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// AssignManagerCommandHandler binds managers to requests.
//
// Example:
//
//	handler := NewAssignManagerCommandHandler(uowFactory)
//	cmd, _ := NewAssignManagerCommand(requestID, managerID)
//	req, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown request or manager account
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    // request already in transit, delivered or cancelled
//	}
type AssignManagerCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

func NewAssignManagerCommandHandler(uowFactory AssignmentUoWFactory) AssignManagerCommandHandler {
	return AssignManagerCommandHandler{uowFactory: uowFactory}
}

func (h AssignManagerCommandHandler) Handle(ctx context.Context, cmd AssignManagerCommand) (*shipment.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return assign(ctx, h.uowFactory, cmd.RequestID(), []kernel.UUID{cmd.ManagerID()},
		func(req *shipment.Request) error {
			return req.AssignManager(cmd.ManagerID())
		})
}

// AssignDriverCommandHandler binds a driver, together with the dispatching manager.
type AssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

func NewAssignDriverCommandHandler(uowFactory AssignmentUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{uowFactory: uowFactory}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*shipment.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return assign(ctx, h.uowFactory, cmd.RequestID(), []kernel.UUID{cmd.ManagerID(), cmd.DriverID()},
		func(req *shipment.Request) error {
			return req.AssignDriver(cmd.ManagerID(), cmd.DriverID())
		})
}

// AssignCollectorCommandHandler binds the pickup courier.
type AssignCollectorCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

func NewAssignCollectorCommandHandler(uowFactory AssignmentUoWFactory) AssignCollectorCommandHandler {
	return AssignCollectorCommandHandler{uowFactory: uowFactory}
}

func (h AssignCollectorCommandHandler) Handle(
	ctx context.Context,
	cmd AssignCollectorCommand,
) (*shipment.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return assign(ctx, h.uowFactory, cmd.RequestID(), []kernel.UUID{cmd.CollectorID()},
		func(req *shipment.Request) error {
			return req.AssignCollector(cmd.CollectorID())
		})
}

// assign locks the request row, checks that every staff account exists, applies
// the change and commits. Two assignments on the same request never interleave.
func assign(
	ctx context.Context,
	factory AssignmentUoWFactory,
	requestID kernel.UUID,
	staff []kernel.UUID,
	apply func(req *shipment.Request) error,
) (*shipment.Request, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requests := uow.ShipmentRequestRepository()
	req, err := requests.GetForUpdate(ctx, requestID)
	if err != nil {
		return nil, err
	}

	accounts := uow.AccountRepository()
	for _, id := range staff {
		if _, err = accounts.Get(ctx, id); err != nil {
			return nil, err
		}
	}

	if err = apply(req); err != nil {
		return nil, err
	}

	if err = requests.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}

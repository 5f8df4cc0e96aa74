package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand moves a request along its lifecycle, e.g. when a
// driver reports that the parcel left the distribution centre.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	status    shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand parses statusName; unknown names are rejected
// with errs.ErrValueIsInvalid before any request is loaded.
func NewUpdateShipmentStatusCommand(requestID kernel.UUID, statusName string) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setStatus(statusName),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

func (c UpdateShipmentStatusCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c *UpdateShipmentStatusCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *UpdateShipmentStatusCommand) setStatus(name string) error {
	status, err := shipment.ParseStatus(name)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}

package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrAssignManagerCommandIsNotConstructed = errors.New(
		"AssignManagerCommand must be created via NewAssignManagerCommand constructor",
	)
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
	ErrAssignCollectorCommandIsNotConstructed = errors.New(
		"AssignCollectorCommand must be created via NewAssignCollectorCommand constructor",
	)
)

// AssignManagerCommand makes a branch manager responsible for a request.
type AssignManagerCommand struct {
	requestID kernel.UUID
	managerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignManagerCommand(requestID, managerID kernel.UUID) (AssignManagerCommand, error) {
	if err := errors.Join(requestID.Validate(), managerID.Validate()); err != nil {
		return AssignManagerCommand{}, err
	}

	return AssignManagerCommand{
		requestID: requestID,
		managerID: managerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignManagerCommand) Validate() error {
	return c.guard.Validate(ErrAssignManagerCommandIsNotConstructed)
}

func (c AssignManagerCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c AssignManagerCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// AssignDriverCommand records that managerID dispatched driverID for a request.
type AssignDriverCommand struct {
	requestID kernel.UUID
	managerID kernel.UUID
	driverID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(requestID, managerID, driverID kernel.UUID) (AssignDriverCommand, error) {
	if err := errors.Join(requestID.Validate(), managerID.Validate(), driverID.Validate()); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		requestID: requestID,
		managerID: managerID,
		driverID:  driverID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c AssignDriverCommand) ManagerID() kernel.UUID {
	return c.managerID
}

func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// AssignCollectorCommand sends a courier to pick the parcel up.
type AssignCollectorCommand struct {
	requestID   kernel.UUID
	collectorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCollectorCommand(requestID, collectorID kernel.UUID) (AssignCollectorCommand, error) {
	if err := errors.Join(requestID.Validate(), collectorID.Validate()); err != nil {
		return AssignCollectorCommand{}, err
	}

	return AssignCollectorCommand{
		requestID:   requestID,
		collectorID: collectorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCollectorCommand) Validate() error {
	return c.guard.Validate(ErrAssignCollectorCommandIsNotConstructed)
}

func (c AssignCollectorCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c AssignCollectorCommand) CollectorID() kernel.UUID {
	return c.collectorID
}

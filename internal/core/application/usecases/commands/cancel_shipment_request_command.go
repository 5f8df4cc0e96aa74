package commands

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrCancelShipmentRequestCommandIsNotConstructed = errors.New(
	"CancelShipmentRequestCommand must be created via NewCancelShipmentRequestCommand constructor",
)

// CancelShipmentRequestCommand cancels a request that has not been delivered yet.
type CancelShipmentRequestCommand struct {
	requestID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewCancelShipmentRequestCommand accepts an empty reason.
func NewCancelShipmentRequestCommand(requestID kernel.UUID, reason string) (CancelShipmentRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return CancelShipmentRequestCommand{}, err
	}

	return CancelShipmentRequestCommand{
		requestID: requestID,
		reason:    strings.TrimSpace(reason),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CancelShipmentRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentRequestCommandIsNotConstructed)
}

func (c CancelShipmentRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c CancelShipmentRequestCommand) Reason() string {
	return c.reason
}

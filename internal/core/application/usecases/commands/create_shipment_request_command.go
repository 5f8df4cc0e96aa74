package commands

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/party"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrCreateShipmentRequestCommandIsNotConstructed = errors.New(
	"CreateShipmentRequestCommand must be created via NewCreateShipmentRequestCommand constructor",
)

// CreateShipmentRequestInput groups the raw intake data of a new shipment request.
type CreateShipmentRequestInput struct {
	CreatorID       kernel.UUID
	Sender          party.Details
	Recipient       party.Details
	PickupAddress   *address.Details
	DeliveryAddress address.Details
	Parcel          shipment.Parcel
	ScheduledDate   string
	TimeWindow      string
	BranchID        kernel.UUID
}

// CreateShipmentRequestCommand files a new shipment request on behalf of an account.
//
// Example:
//
//	parcel, _ := shipment.NewParcel(2.5, nil, "documents", "")
//	cmd, err := NewCreateShipmentRequestCommand(CreateShipmentRequestInput{
//	    CreatorID:       clientID,
//	    Sender:          party.Details{Name: "Ana", DocumentType: "CC", DocumentNumber: "1020"},
//	    Recipient:       party.Details{Name: "Luis", DocumentType: "CC", DocumentNumber: "3040"},
//	    DeliveryAddress: address.Details{Text: "Calle 80 # 10-20", City: "Bogotá"},
//	    Parcel:          parcel,
//	    ScheduledDate:   "2025-03-01",
//	    TimeWindow:      "08:00-12:00",
//	    BranchID:        branchID,
//	})
type CreateShipmentRequestCommand struct { //nolint:recvcheck //using for validation
	input CreateShipmentRequestInput

	guard guard.ConstructorGuard
}

// NewCreateShipmentRequestCommand validates the identifiers, both party documents and the parcel.
// Existence of the creator and branch is checked by the handler.
func NewCreateShipmentRequestCommand(input CreateShipmentRequestInput) (CreateShipmentRequestCommand, error) {
	cmd := CreateShipmentRequestCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		input.CreatorID.Validate(),
		input.BranchID.Validate(),
		input.Sender.Validate(),
		input.Recipient.Validate(),
		input.Parcel.Validate(),
	); err != nil {
		return CreateShipmentRequestCommand{}, err
	}

	input.ScheduledDate = strings.TrimSpace(input.ScheduledDate)
	input.TimeWindow = strings.TrimSpace(input.TimeWindow)
	cmd.input = input
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentRequestCommandIsNotConstructed)
}

func (c CreateShipmentRequestCommand) CreatorID() kernel.UUID {
	return c.input.CreatorID
}

func (c CreateShipmentRequestCommand) Sender() party.Details {
	return c.input.Sender
}

func (c CreateShipmentRequestCommand) Recipient() party.Details {
	return c.input.Recipient
}

// PickupAddress is nil when the parcel is dropped off at the branch.
func (c CreateShipmentRequestCommand) PickupAddress() *address.Details {
	return c.input.PickupAddress
}

func (c CreateShipmentRequestCommand) DeliveryAddress() address.Details {
	return c.input.DeliveryAddress
}

func (c CreateShipmentRequestCommand) Parcel() shipment.Parcel {
	return c.input.Parcel
}

func (c CreateShipmentRequestCommand) ScheduledDate() string {
	return c.input.ScheduledDate
}

func (c CreateShipmentRequestCommand) TimeWindow() string {
	return c.input.TimeWindow
}

func (c CreateShipmentRequestCommand) BranchID() kernel.UUID {
	return c.input.BranchID
}

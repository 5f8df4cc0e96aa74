package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/party"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateInput(t *testing.T) commands.CreateShipmentRequestInput {
	t.Helper()

	parcel, err := shipment.NewParcel(2, nil, "shoes", "")
	require.NoError(t, err)

	return commands.CreateShipmentRequestInput{
		CreatorID:       kernel.NewUUID(),
		Sender:          party.Details{Name: "Ana", DocumentType: "CC", DocumentNumber: "1020"},
		Recipient:       party.Details{Name: "Luis", DocumentType: "CE", DocumentNumber: "3040"},
		DeliveryAddress: address.Details{Text: "Calle 80 # 10-20", City: "Bogotá"},
		Parcel:          parcel,
		ScheduledDate:   " 2025-03-01 ",
		TimeWindow:      "08:00-12:00",
		BranchID:        kernel.NewUUID(),
	}
}

func TestNewCreateShipmentRequestCommand_ValidInput(t *testing.T) {
	input := validCreateInput(t)

	cmd, err := commands.NewCreateShipmentRequestCommand(input)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, input.CreatorID, cmd.CreatorID())
	assert.Equal(t, input.BranchID, cmd.BranchID())
	assert.Equal(t, "2025-03-01", cmd.ScheduledDate())
	assert.Nil(t, cmd.PickupAddress())
}

func TestNewCreateShipmentRequestCommand_MissingSenderDocument(t *testing.T) {
	input := validCreateInput(t)
	input.Sender.DocumentNumber = ""

	_, err := commands.NewCreateShipmentRequestCommand(input)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateShipmentRequestCommand_InvalidReferences(t *testing.T) {
	input := validCreateInput(t)
	input.CreatorID = kernel.UUID{}
	input.Parcel = shipment.Parcel{}

	_, err := commands.NewCreateShipmentRequestCommand(input)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, shipment.ErrParcelIsNotConstructed)
}

func TestCreateShipmentRequestCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateShipmentRequestCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateShipmentRequestCommandIsNotConstructed)
}

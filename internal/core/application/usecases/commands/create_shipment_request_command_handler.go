package commands

import (
	"context"
	"time"

	"shipping/internal/core/application/registry"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// CreateShipmentRequestCommandHandler files shipment requests.
//
// Everything written while filing (parties, addresses, tracking record and the
// request itself) shares one transaction: either all of it is committed or none.
//
// Example:
//
//	handler := NewCreateShipmentRequestCommandHandler(uowFactory, services.NewTrackingCodeGenerator())
//	req, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown creator or branch
//	}
//	fmt.Println(req.Tracking().PublicCode())
type CreateShipmentRequestCommandHandler struct {
	uowFactory FilingUoWFactory
	codes      registry.CodeGenerator
}

// NewCreateShipmentRequestCommandHandler creates a handler for filing shipment requests.
func NewCreateShipmentRequestCommandHandler(
	uowFactory FilingUoWFactory,
	codes registry.CodeGenerator,
) CreateShipmentRequestCommandHandler {
	return CreateShipmentRequestCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
	}
}

// Handle validates the creator and branch, resolves parties and addresses, issues
// a tracking record and stores the request in Pending status.
//
// Returns:
//   - *shipment.Request: the new request
//   - error: errs.ErrObjectNotFound for an unknown creator or branch,
//     errs.ErrValueIsRequired for a missing document number, errs.ErrConflict
//     when tracking codes could not be issued, or persistence errors
func (h CreateShipmentRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentRequestCommand,
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

	if _, err := uow.AccountRepository().Get(ctx, cmd.CreatorID()); err != nil {
		return nil, err
	}

	if _, err := uow.BranchRepository().Get(ctx, cmd.BranchID()); err != nil {
		return nil, err
	}

	parties := registry.NewPartyRegistry(uow.PartyRepository())
	sender, err := parties.FindOrCreate(ctx, cmd.Sender())
	if err != nil {
		return nil, err
	}

	recipient, err := parties.FindOrCreate(ctx, cmd.Recipient())
	if err != nil {
		return nil, err
	}

	addresses := registry.NewAddressRegistry(uow.AddressRepository())
	var pickupID *kernel.UUID
	if details := cmd.PickupAddress(); details != nil {
		var pickup *address.Address
		if pickup, err = addresses.FindOrCreate(ctx, *details); err != nil {
			return nil, err
		}
		id := pickup.ID()
		pickupID = &id
	}

	delivery, err := addresses.FindOrCreate(ctx, cmd.DeliveryAddress())
	if err != nil {
		return nil, err
	}

	record, err := registry.NewTrackingIssuer(uow.TrackingRepository(), h.codes).Issue(ctx)
	if err != nil {
		return nil, err
	}

	req, err := shipment.NewRequest(shipment.Draft{
		ID:                kernel.NewUUID(),
		CreatorID:         cmd.CreatorID(),
		SenderID:          sender.ID(),
		RecipientID:       recipient.ID(),
		BranchID:          cmd.BranchID(),
		PickupAddressID:   pickupID,
		DeliveryAddressID: delivery.ID(),
		Parcel:            cmd.Parcel(),
		Tracking:          record,
		ScheduledDate:     cmd.ScheduledDate(),
		TimeWindow:        cmd.TimeWindow(),
		CreatedAt:         time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRequestRepository().Add(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}

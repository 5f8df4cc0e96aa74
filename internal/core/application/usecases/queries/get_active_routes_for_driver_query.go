package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrGetActiveRoutesForDriverQueryIsNotConstructed = errors.New(
	"GetActiveRoutesForDriverQuery must be created via NewGetActiveRoutesForDriverQuery constructor",
)

// GetActiveRoutesForDriverQuery lists the work still ahead of a driver: every
// request bound to them that is neither delivered nor cancelled.
type GetActiveRoutesForDriverQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetActiveRoutesForDriverQuery(driverID kernel.UUID) (GetActiveRoutesForDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetActiveRoutesForDriverQuery{}, err
	}
	return GetActiveRoutesForDriverQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActiveRoutesForDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveRoutesForDriverQueryIsNotConstructed)
}

func (q GetActiveRoutesForDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}

type GetActiveRoutesForDriverQueryHandler struct {
	reader ShipmentReader
}

func NewGetActiveRoutesForDriverQueryHandler(reader ShipmentReader) GetActiveRoutesForDriverQueryHandler {
	return GetActiveRoutesForDriverQueryHandler{reader: reader}
}

// Handle keeps the repository order (newest first). An unknown driver yields an empty slice.
func (h GetActiveRoutesForDriverQueryHandler) Handle(
	ctx context.Context,
	q GetActiveRoutesForDriverQuery,
) ([]*shipment.Request, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	all, err := h.reader.ListByDriver(ctx, q.DriverID())
	if err != nil {
		return nil, err
	}

	active := make([]*shipment.Request, 0, len(all))
	for _, req := range all {
		if !req.Status().IsTerminal() {
			active = append(active, req)
		}
	}

	return active, nil
}

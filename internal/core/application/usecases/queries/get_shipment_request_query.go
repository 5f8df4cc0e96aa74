package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/tracking"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetShipmentRequestQueryIsNotConstructed = errors.New(
		"GetShipmentRequestQuery must be created via NewGetShipmentRequestQuery constructor",
	)
	ErrGetShipmentByTrackingNumberQueryIsNotConstructed = errors.New(
		"GetShipmentByTrackingNumberQuery must be created via NewGetShipmentByTrackingNumberQuery constructor",
	)
)

// GetShipmentRequestQuery loads a single request by id.
type GetShipmentRequestQuery struct {
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShipmentRequestQuery(requestID kernel.UUID) (GetShipmentRequestQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetShipmentRequestQuery{}, err
	}
	return GetShipmentRequestQuery{requestID: requestID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentRequestQueryIsNotConstructed)
}

func (q GetShipmentRequestQuery) RequestID() kernel.UUID {
	return q.requestID
}

type GetShipmentRequestQueryHandler struct {
	reader ShipmentReader
}

func NewGetShipmentRequestQueryHandler(reader ShipmentReader) GetShipmentRequestQueryHandler {
	return GetShipmentRequestQueryHandler{reader: reader}
}

// Handle returns errs.ErrObjectNotFound for an unknown id.
func (h GetShipmentRequestQueryHandler) Handle(ctx context.Context, q GetShipmentRequestQuery) (*shipment.Request, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return h.reader.Get(ctx, q.RequestID())
}

// GetShipmentByTrackingNumberQuery looks a request up by the code printed on its label.
//
// Example:
//
//	q, _ := NewGetShipmentByTrackingNumberQuery("mfrggzdfmztwq2lknnwg23tpoa")
//	req, err := handler.Handle(ctx, q)
type GetShipmentByTrackingNumberQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewGetShipmentByTrackingNumberQuery normalises the code to upper-case. Both
// the public code and the shorter internal code are accepted.
func NewGetShipmentByTrackingNumberQuery(code string) (GetShipmentByTrackingNumberQuery, error) {
	code = tracking.NormalizeCode(code)
	if code == "" {
		return GetShipmentByTrackingNumberQuery{}, errs.NewValueIsRequiredError("trackingCode")
	}
	return GetShipmentByTrackingNumberQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingNumberQueryIsNotConstructed)
}

func (q GetShipmentByTrackingNumberQuery) Code() string {
	return q.code
}

type GetShipmentByTrackingNumberQueryHandler struct {
	reader ShipmentReader
}

func NewGetShipmentByTrackingNumberQueryHandler(reader ShipmentReader) GetShipmentByTrackingNumberQueryHandler {
	return GetShipmentByTrackingNumberQueryHandler{reader: reader}
}

// Handle returns errs.ErrObjectNotFound when no request carries the code.
func (h GetShipmentByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	q GetShipmentByTrackingNumberQuery,
) (*shipment.Request, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return h.reader.GetByTrackingCode(ctx, q.Code())
}

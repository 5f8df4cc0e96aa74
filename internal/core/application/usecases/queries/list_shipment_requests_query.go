package queries

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrListShipmentRequestsQueryIsNotConstructed = errors.New(
	"ListShipmentRequestsQuery must be created via NewListShipmentRequestsQuery constructor",
)

// ListFilter selects which requests a listing returns.
type ListFilter int

const (
	UnknownFilter ListFilter = iota
	// ByClient lists requests filed by an account.
	ByClient
	// ByBranch lists every request of a branch.
	ByBranch
	// PendingByBranch lists requests of a branch still waiting for staff.
	PendingByBranch
	// AssignedByBranch lists requests of a branch that have staff but have not left yet.
	AssignedByBranch
	// ByDriver lists requests bound to a driver or collector, whatever their status.
	ByDriver
	// ByManager lists requests a manager is responsible for.
	ByManager
	// ByParty lists requests where a party is the sender or the recipient.
	ByParty
	// ByStatus lists every request currently in a status, across branches.
	ByStatus
	// CreatedBetween lists requests filed within a half-open time range.
	CreatedBetween
)

func (f ListFilter) String() string {
	switch f {
	case ByClient:
		return "client"
	case ByBranch:
		return "branch"
	case PendingByBranch:
		return "pending-by-branch"
	case AssignedByBranch:
		return "assigned-by-branch"
	case ByDriver:
		return "driver"
	case ByManager:
		return "manager"
	case ByParty:
		return "party"
	case ByStatus:
		return "status"
	case CreatedBetween:
		return "created-between"
	default:
		return "unknown"
	}
}

// ListShipmentRequestsQuery lists request summaries, newest first.
//
// Example:
//
//	q, _ := NewListShipmentRequestsQuery(PendingByBranch, branchID)
//	summaries, err := handler.Handle(ctx, q)
//	for _, s := range summaries {
//	    fmt.Printf("%s %s -> %s\n", s.PublicCode, s.SenderName, s.RecipientName)
//	}
type ListShipmentRequestsQuery struct {
	filter    ListFilter
	subjectID kernel.UUID
	status    shipment.Status
	from, to  time.Time

	guard guard.ConstructorGuard
}

// NewListShipmentRequestsQuery pairs a filter with the id it applies to (client,
// branch, driver, manager or party id). ByStatus and CreatedBetween have their
// own constructors.
func NewListShipmentRequestsQuery(filter ListFilter, subjectID kernel.UUID) (ListShipmentRequestsQuery, error) {
	var filterErr error
	if filter <= UnknownFilter || filter > ByParty {
		filterErr = errs.NewValueIsInvalidErrorWithCause("filter", fmt.Errorf("%d is not a known filter", filter))
	}

	if err := errors.Join(filterErr, subjectID.Validate()); err != nil {
		return ListShipmentRequestsQuery{}, err
	}

	return ListShipmentRequestsQuery{
		filter:    filter,
		subjectID: subjectID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewListShipmentRequestsByStatusQuery lists requests in the given status.
func NewListShipmentRequestsByStatusQuery(status shipment.Status) (ListShipmentRequestsQuery, error) {
	if err := status.Validate(); err != nil {
		return ListShipmentRequestsQuery{}, err
	}
	return ListShipmentRequestsQuery{
		filter: ByStatus,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewListShipmentRequestsCreatedBetweenQuery lists requests created at or after
// from and strictly before to.
func NewListShipmentRequestsCreatedBetweenQuery(from, to time.Time) (ListShipmentRequestsQuery, error) {
	var fromErr, toErr error
	if from.IsZero() {
		fromErr = errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		toErr = errs.NewValueIsRequiredError("to")
	}
	if err := errors.Join(fromErr, toErr); err != nil {
		return ListShipmentRequestsQuery{}, err
	}
	if !from.Before(to) {
		return ListShipmentRequestsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"to", fmt.Errorf("%s is not after %s", to.Format(time.RFC3339), from.Format(time.RFC3339)),
		)
	}

	return ListShipmentRequestsQuery{
		filter: CreatedBetween,
		from:   from.UTC(),
		to:     to.UTC(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListShipmentRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentRequestsQueryIsNotConstructed)
}

func (q ListShipmentRequestsQuery) Filter() ListFilter {
	return q.filter
}

func (q ListShipmentRequestsQuery) SubjectID() kernel.UUID {
	return q.subjectID
}

func (q ListShipmentRequestsQuery) Status() shipment.Status {
	return q.status
}

// Range is the creation window of a CreatedBetween listing.
func (q ListShipmentRequestsQuery) Range() (from, to time.Time) {
	return q.from, q.to
}

// ShipmentRequestSummary is the row shown in request listings.
type ShipmentRequestSummary struct {
	ID            kernel.UUID
	PublicCode    string
	Status        shipment.Status
	BranchID      kernel.UUID
	SenderName    string
	RecipientName string
	DriverID      *kernel.UUID
	ManagerID     *kernel.UUID
	ScheduledDate string
	TimeWindow    string
	CreatedAt     time.Time
}

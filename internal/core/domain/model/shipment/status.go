package shipment

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment request.
//
// State transitions:
//
//	Pending ──> Assigned ──> InPickupRoute ──> InDistribution ──> InDeliveryRoute ──> Delivered
//	   │           │  ↺            │                  │                   │
//	   └───────────┴───────────────┴──────────────────┴───────────────────┴──> Cancelled
//
// Assigned may be re-entered from Pending or Assigned by the staff assignment
// operations. Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialised Status values.
	Unknown Status = iota

	// Pending is the initial status of a filed request.
	// No manager or driver has been assigned yet.
	Pending

	// Assigned indicates a manager, driver or collector has been bound to the request.
	// Staff can still be replaced while in this status.
	Assigned

	// InPickupRoute indicates the driver is on the way to collect the parcel.
	InPickupRoute

	// InDistribution indicates the parcel is at a branch being sorted for delivery.
	InDistribution

	// InDeliveryRoute indicates the parcel is on its way to the recipient.
	InDeliveryRoute

	// Delivered indicates the recipient has received the parcel.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the request was withdrawn before delivery.
	// This is a final state; the reason, if any, is kept on the request.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Pending:         "PENDING",
		Assigned:        "ASSIGNED",
		InPickupRoute:   "IN_PICKUP_ROUTE",
		InDistribution:  "IN_DISTRIBUTION",
		InDeliveryRoute: "IN_DELIVERY_ROUTE",
		Delivered:       "DELIVERED",
		Cancelled:       "CANCELLED",
	}
}

// forward lists the single allowed successor of each non-terminal state.
func forward() map[Status]Status {
	//nolint:exhaustive // terminal and unknown states have no successor
	return map[Status]Status{
		Pending:         Assigned,
		Assigned:        InPickupRoute,
		InPickupRoute:   InDistribution,
		InDistribution:  InDeliveryRoute,
		InDeliveryRoute: Delivered,
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Assigned, InPickupRoute, InDistribution, InDeliveryRoute, Delivered, Cancelled}
}

// ParseStatus resolves a status name. Matching ignores surrounding whitespace and case.
//
// Returns ErrValueIsInvalid for names outside the enumeration, including "UNKNOWN".
//
// Example:
//
//	s, err := shipment.ParseStatus("in_delivery_route") // InDeliveryRoute, nil
func ParseStatus(name string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for _, s := range Statuses() {
		if getStatusStrings()[s] == normalized {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", name),
	)
}

func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAssign checks that staff may be (re)assigned in the current state.
// Only Pending and Assigned requests accept assignments.
func (s Status) ValidateAssign() error {
	if s != Pending && s != Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// Assign transitions to Assigned from Pending or Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}
	return Assigned, nil
}

// TransitionTo validates a requested status change.
//
// Accepted moves:
//   - the current status (no-op)
//   - the next status along the forward path
//   - Cancelled from any non-terminal status
//
// Anything else, including every move out of a terminal status, returns ErrValueIsInvalid.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	switch {
	case target == s:
		return s, nil
	case s.IsTerminal():
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is terminal, cannot move to %s", s, target),
		)
	case target == Cancelled:
		return Cancelled, nil
	case forward()[s] == target:
		return target, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move from %s to %s", s, target),
		)
	}
}

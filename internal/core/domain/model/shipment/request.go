// Package shipment contains the ShipmentRequest aggregate and its lifecycle rules.
package shipment

import (
	"errors"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tracking"
	"shipping/internal/pkg/errs"
)

var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Draft holds everything needed to file a new shipment request. All references
// must already point at persisted entities.
type Draft struct {
	ID                kernel.UUID
	CreatorID         kernel.UUID
	SenderID          kernel.UUID
	RecipientID       kernel.UUID
	BranchID          kernel.UUID
	PickupAddressID   *kernel.UUID
	DeliveryAddressID kernel.UUID
	Parcel            Parcel
	Tracking          *tracking.Record
	ScheduledDate     string
	TimeWindow        string
	CreatedAt         time.Time
}

// Snapshot is the persisted state of a request, used by RestoreRequest.
type Snapshot struct {
	Draft

	DriverID           *kernel.UUID
	ManagerID          *kernel.UUID
	Status             Status
	CancellationReason string
	UpdatedAt          time.Time
}

// Request is the shipment request aggregate root.
//
// Invariants:
//   - creator, sender, recipient, branch, delivery address, parcel and tracking record are set
//   - a new request starts in Pending
//   - status only moves forward (see Status.TransitionTo)
//   - driver and manager may be replaced but never cleared
type Request struct {
	id                 kernel.UUID
	creatorID          kernel.UUID
	senderID           kernel.UUID
	recipientID        kernel.UUID
	branchID           kernel.UUID
	pickupAddressID    *kernel.UUID
	deliveryAddressID  kernel.UUID
	parcel             Parcel
	tracking           *tracking.Record
	driverID           *kernel.UUID
	managerID          *kernel.UUID
	scheduledDate      string
	timeWindow         string
	status             Status
	cancellationReason string
	createdAt          time.Time
	updatedAt          time.Time

	isConstructed bool
}

// NewRequest files a request in Pending status with no staff assigned.
//
// Example:
//
//	req, err := shipment.NewRequest(shipment.Draft{
//	    ID:                kernel.NewUUID(),
//	    CreatorID:         creator.ID(),
//	    SenderID:          sender.ID(),
//	    RecipientID:       recipient.ID(),
//	    BranchID:          branch.ID(),
//	    DeliveryAddressID: delivery.ID(),
//	    Parcel:            parcel,
//	    Tracking:          record,
//	    ScheduledDate:     "2025-03-01",
//	    TimeWindow:        "08:00-12:00",
//	    CreatedAt:         time.Now(),
//	})
func NewRequest(d Draft) (*Request, error) {
	r := &Request{
		status:        Pending,
		isConstructed: true,
	}

	if err := r.apply(d); err != nil {
		return nil, err
	}

	r.updatedAt = r.createdAt
	return r, nil
}

// RestoreRequest rebuilds a persisted request, trusting its stored status and staff.
func RestoreRequest(s Snapshot) (*Request, error) {
	r := &Request{isConstructed: true}

	if err := errors.Join(
		r.apply(s.Draft),
		s.Status.Validate(),
		optionalID(s.DriverID),
		optionalID(s.ManagerID),
	); err != nil {
		return nil, err
	}

	r.status = s.Status
	r.driverID = s.DriverID
	r.managerID = s.ManagerID
	r.cancellationReason = s.CancellationReason
	r.updatedAt = s.UpdatedAt.UTC()
	if r.updatedAt.IsZero() {
		r.updatedAt = r.createdAt
	}
	return r, nil
}

func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares requests by identifier.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) CreatorID() kernel.UUID {
	return r.creatorID
}

func (r *Request) SenderID() kernel.UUID {
	return r.senderID
}

func (r *Request) RecipientID() kernel.UUID {
	return r.recipientID
}

func (r *Request) BranchID() kernel.UUID {
	return r.branchID
}

func (r *Request) PickupAddressID() *kernel.UUID {
	return r.pickupAddressID
}

func (r *Request) DeliveryAddressID() kernel.UUID {
	return r.deliveryAddressID
}

func (r *Request) Parcel() Parcel {
	return r.parcel
}

func (r *Request) Tracking() *tracking.Record {
	return r.tracking
}

func (r *Request) DriverID() *kernel.UUID {
	return r.driverID
}

func (r *Request) ManagerID() *kernel.UUID {
	return r.managerID
}

func (r *Request) ScheduledDate() string {
	return r.scheduledDate
}

func (r *Request) TimeWindow() string {
	return r.timeWindow
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) CancellationReason() string {
	return r.cancellationReason
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

// AssignManager binds the branch manager responsible for the request.
// Allowed only while the request is Pending or Assigned.
func (r *Request) AssignManager(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}

	r.managerID = &managerID
	r.setStatus(newStatus)
	return nil
}

// AssignDriver binds both the manager that made the decision and the driver.
func (r *Request) AssignDriver(managerID, driverID kernel.UUID) error {
	if err := errors.Join(managerID.Validate(), driverID.Validate()); err != nil {
		return err
	}

	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}

	r.managerID = &managerID
	r.driverID = &driverID
	r.setStatus(newStatus)
	return nil
}

// AssignCollector binds the courier that picks the parcel up. The collector
// occupies the driver slot; the manager is left as is.
func (r *Request) AssignCollector(collectorID kernel.UUID) error {
	if err := collectorID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}

	r.driverID = &collectorID
	r.setStatus(newStatus)
	return nil
}

// ChangeStatus moves the request to target following Status.TransitionTo rules.
func (r *Request) ChangeStatus(target Status) error {
	newStatus, err := r.status.TransitionTo(target)
	if err != nil {
		return err
	}

	r.setStatus(newStatus)
	return nil
}

// Cancel moves the request to Cancelled and records why.
func (r *Request) Cancel(reason string) error {
	newStatus, err := r.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	if r.status != Cancelled {
		r.cancellationReason = strings.TrimSpace(reason)
	}
	r.setStatus(newStatus)
	return nil
}

func (r *Request) setStatus(s Status) {
	r.status = s
	r.updatedAt = time.Now().UTC()
}

func (r *Request) apply(d Draft) error {
	if err := errors.Join(
		d.ID.Validate(),
		d.CreatorID.Validate(),
		d.SenderID.Validate(),
		d.RecipientID.Validate(),
		d.BranchID.Validate(),
		optionalID(d.PickupAddressID),
		d.DeliveryAddressID.Validate(),
		d.Parcel.Validate(),
		d.Tracking.Validate(),
	); err != nil {
		return err
	}

	if d.CreatedAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	r.id = d.ID
	r.creatorID = d.CreatorID
	r.senderID = d.SenderID
	r.recipientID = d.RecipientID
	r.branchID = d.BranchID
	r.pickupAddressID = d.PickupAddressID
	r.deliveryAddressID = d.DeliveryAddressID
	r.parcel = d.Parcel
	r.tracking = d.Tracking
	r.scheduledDate = strings.TrimSpace(d.ScheduledDate)
	r.timeWindow = strings.TrimSpace(d.TimeWindow)
	r.createdAt = d.CreatedAt.UTC()
	return nil
}

func optionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}

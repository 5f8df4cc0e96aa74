package queries

import (
	"context"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const listShipmentRequestsSQL = `
	SELECT
		r.id,
		t.public_code,
		r.status,
		r.branch_id,
		s.name,
		rc.name,
		r.driver_id,
		r.manager_id,
		r.scheduled_date,
		r.time_window,
		r.created_at
	FROM shipment_requests r
	JOIN tracking_records t ON t.id = r.tracking_id
	JOIN parties s ON s.id = r.sender_id
	JOIN parties rc ON rc.id = r.recipient_id
	WHERE %s
	ORDER BY r.created_at DESC, r.id
`

// ListShipmentRequestsQueryHandler reads request summaries straight from the database.
//
// Example:
//
//	handler := NewListShipmentRequestsQueryHandler(db)
//	q, _ := NewListShipmentRequestsQuery(ByDriver, driverID)
//	summaries, err := handler.Handle(ctx, q)
type ListShipmentRequestsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentRequestsQueryHandler requires a GORM database connection for query execution.
func NewListShipmentRequestsQueryHandler(db *gorm.DB) ListShipmentRequestsQueryHandler {
	return ListShipmentRequestsQueryHandler{db: db}
}

// Handle executes the listing. An empty result is an empty slice, never nil.
func (h ListShipmentRequestsQueryHandler) Handle(
	ctx context.Context,
	q ListShipmentRequestsQuery,
) ([]ShipmentRequestSummary, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	where, args := whereClause(q)
	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(listShipmentRequestsSQL, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]ShipmentRequestSummary, 0)
	for rows.Next() {
		var (
			id, branchID        uuid.UUID
			driverID, managerID *uuid.UUID
			status              string
			createdAt           time.Time
			summary             ShipmentRequestSummary
		)

		if err = rows.Scan(
			&id,
			&summary.PublicCode,
			&status,
			&branchID,
			&summary.SenderName,
			&summary.RecipientName,
			&driverID,
			&managerID,
			&summary.ScheduledDate,
			&summary.TimeWindow,
			&createdAt,
		); err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.BranchID, err = kernel.UUIDFromBytes(branchID[:]); err != nil {
			return nil, err
		}
		if summary.DriverID, err = kernel.OptionalUUIDFromBytes(driverID); err != nil {
			return nil, err
		}
		if summary.ManagerID, err = kernel.OptionalUUIDFromBytes(managerID); err != nil {
			return nil, err
		}
		if summary.Status, err = shipment.ParseStatus(status); err != nil {
			return nil, err
		}
		summary.CreatedAt = createdAt.UTC()

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func whereClause(q ListShipmentRequestsQuery) (string, []any) {
	id := q.SubjectID().Bytes()

	switch q.Filter() {
	case ByStatus:
		return "r.status = ?", []any{q.Status().String()}
	case CreatedBetween:
		from, to := q.Range()
		return "r.created_at >= ? AND r.created_at < ?", []any{from, to}
	case ByClient:
		return "r.creator_id = ?", []any{id}
	case ByBranch:
		return "r.branch_id = ?", []any{id}
	case PendingByBranch:
		return "r.branch_id = ? AND r.status = ?", []any{id, shipment.Pending.String()}
	case AssignedByBranch:
		return "r.branch_id = ? AND r.status = ?", []any{id, shipment.Assigned.String()}
	case ByDriver:
		return "r.driver_id = ?", []any{id}
	case ByManager:
		return "r.manager_id = ?", []any{id}
	case ByParty:
		return "(r.sender_id = ? OR r.recipient_id = ?)", []any{id, id}
	default:
		return "FALSE", nil
	}
}

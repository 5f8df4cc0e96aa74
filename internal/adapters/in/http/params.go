package http

import (
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListShipmentsParams are the query parameters of GET /api/v1/shipments.
type ListShipmentsParams struct {
	Client  *uuid.UUID `form:"client"`
	Branch  *uuid.UUID `form:"branch"`
	Driver  *uuid.UUID `form:"driver"`
	Manager *uuid.UUID `form:"manager"`
	Party   *uuid.UUID `form:"party"`
	State   *string    `form:"state"`
	Status  *string    `form:"status"`
	From    *time.Time `form:"from"`
	To      *time.Time `form:"to"`
}

func bindListShipmentsParams(c echo.Context) (ListShipmentsParams, error) {
	var p ListShipmentsParams
	qs := c.QueryParams()

	bindings := []struct {
		name string
		dest any
	}{
		{"client", &p.Client},
		{"branch", &p.Branch},
		{"driver", &p.Driver},
		{"manager", &p.Manager},
		{"party", &p.Party},
		{"state", &p.State},
		{"status", &p.Status},
		{"from", &p.From},
		{"to", &p.To},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, qs, b.dest); err != nil {
			return ListShipmentsParams{}, errs.NewValueIsInvalidErrorWithCause(b.name, err)
		}
	}
	return p, nil
}

// query resolves the single selector the parameters carry into a listing query.
func (p ListShipmentsParams) query() (queries.ListShipmentRequestsQuery, error) {
	subjects := []struct {
		id     *uuid.UUID
		filter queries.ListFilter
	}{
		{p.Client, queries.ByClient},
		{p.Branch, queries.ByBranch},
		{p.Driver, queries.ByDriver},
		{p.Manager, queries.ByManager},
		{p.Party, queries.ByParty},
	}

	var (
		filter    queries.ListFilter
		subject   *uuid.UUID
		selectors int
	)
	for _, s := range subjects {
		if s.id != nil {
			filter, subject = s.filter, s.id
			selectors++
		}
	}
	if p.Status != nil {
		filter = queries.ByStatus
		selectors++
	}
	if p.From != nil || p.To != nil {
		filter = queries.CreatedBetween
		selectors++
	}

	switch {
	case selectors == 0:
		return queries.ListShipmentRequestsQuery{}, errs.NewValueIsRequiredError("filter")
	case selectors > 1:
		return queries.ListShipmentRequestsQuery{}, errs.NewValueIsInvalidError("filter")
	}

	if p.State != nil {
		if filter != queries.ByBranch {
			return queries.ListShipmentRequestsQuery{}, errs.NewValueIsInvalidError("state")
		}
		switch *p.State {
		case "pending":
			filter = queries.PendingByBranch
		case "assigned":
			filter = queries.AssignedByBranch
		default:
			return queries.ListShipmentRequestsQuery{}, errs.NewValueIsInvalidError("state")
		}
	}

	switch filter {
	case queries.ByStatus:
		status, err := shipment.ParseStatus(*p.Status)
		if err != nil {
			return queries.ListShipmentRequestsQuery{}, err
		}
		return queries.NewListShipmentRequestsByStatusQuery(status)
	case queries.CreatedBetween:
		var from, to time.Time
		if p.From != nil {
			from = *p.From
		}
		if p.To != nil {
			to = *p.To
		}
		return queries.NewListShipmentRequestsCreatedBetweenQuery(from, to)
	default:
		id, err := kernel.UUIDFromBytes(subject[:])
		if err != nil {
			return queries.ListShipmentRequestsQuery{}, err
		}
		return queries.NewListShipmentRequestsQuery(filter, id)
	}
}

// pathID binds the :id path segment.
func pathID(c echo.Context) (kernel.UUID, error) {
	var id uuid.UUID
	if err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true},
	); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.UUIDFromBytes(id[:])
}

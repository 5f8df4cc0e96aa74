package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var req CreateShipmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := req.command()
	if err != nil {
		return err
	}

	created, err := s.h.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.logger.InfoContext(c.Request().Context(), "shipment request filed",
		"request_id", created.ID().String(), "tracking", created.Tracking().PublicCode())
	return c.JSON(http.StatusCreated, toShipmentResponse(created))
}

func (r CreateShipmentRequest) command() (commands.CreateShipmentRequestCommand, error) {
	creatorID, err := kernel.UUIDFromString(r.CreatorID)
	if err != nil {
		return commands.CreateShipmentRequestCommand{}, err
	}
	branchID, err := kernel.UUIDFromString(r.BranchID)
	if err != nil {
		return commands.CreateShipmentRequestCommand{}, err
	}

	delivery, err := r.DeliveryAddress.details()
	if err != nil {
		return commands.CreateShipmentRequestCommand{}, err
	}

	var pickup *address.Details
	if r.PickupAddress != nil {
		d, err := r.PickupAddress.details()
		if err != nil {
			return commands.CreateShipmentRequestCommand{}, err
		}
		pickup = &d
	}

	parcel, err := r.Parcel.parcel()
	if err != nil {
		return commands.CreateShipmentRequestCommand{}, err
	}

	return commands.NewCreateShipmentRequestCommand(commands.CreateShipmentRequestInput{
		CreatorID:       creatorID,
		Sender:          r.Sender.details(),
		Recipient:       r.Recipient.details(),
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		Parcel:          parcel,
		ScheduledDate:   r.ScheduledDate,
		TimeWindow:      r.TimeWindow,
		BranchID:        branchID,
	})
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	q, err := queries.NewGetShipmentRequestQuery(id)
	if err != nil {
		return err
	}

	found, err := s.h.GetShipment.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(found))
}

// GetShipmentByTracking handles GET /api/v1/shipments/tracking/:code.
func (s *Server) GetShipmentByTracking(c echo.Context) error {
	q, err := queries.NewGetShipmentByTrackingNumberQuery(c.Param("code"))
	if err != nil {
		return err
	}

	found, err := s.h.GetByTracking.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(found))
}

// ListShipments handles GET /api/v1/shipments. Exactly one of client, branch,
// driver, manager, party, status or the from/to window selects the listing;
// branch may be narrowed with state=pending or state=assigned.
func (s *Server) ListShipments(c echo.Context) error {
	params, err := bindListShipmentsParams(c)
	if err != nil {
		return err
	}

	q, err := params.query()
	if err != nil {
		return err
	}

	summaries, err := s.h.ListShipments.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSummaryResponses(summaries))
}

// UpdateShipmentStatus handles PATCH /api/v1/shipments/:id/status.
func (s *Server) UpdateShipmentStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(id, req.Status)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(updated))
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req CancelRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCancelShipmentRequestCommand(id, req.Reason)
	if err != nil {
		return err
	}

	cancelled, err := s.h.CancelShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(cancelled))
}

// AssignManager handles POST /api/v1/shipments/:id/manager.
func (s *Server) AssignManager(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req AssignManagerRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	managerID, err := kernel.UUIDFromString(req.ManagerID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignManagerCommand(id, managerID)
	if err != nil {
		return err
	}

	updated, err := s.h.AssignManager.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(updated))
}

// AssignDriver handles POST /api/v1/shipments/:id/driver.
func (s *Server) AssignDriver(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req AssignDriverRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	managerID, err := kernel.UUIDFromString(req.ManagerID)
	if err != nil {
		return err
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignDriverCommand(id, managerID, driverID)
	if err != nil {
		return err
	}

	updated, err := s.h.AssignDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(updated))
}

// AssignCollector handles POST /api/v1/shipments/:id/collector.
func (s *Server) AssignCollector(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req AssignCollectorRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	collectorID, err := kernel.UUIDFromString(req.CollectorID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignCollectorCommand(id, collectorID)
	if err != nil {
		return err
	}

	updated, err := s.h.AssignCollector.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(updated))
}

// GetActiveRoutes handles GET /api/v1/drivers/:id/active-routes.
func (s *Server) GetActiveRoutes(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	q, err := queries.NewGetActiveRoutesForDriverQuery(id)
	if err != nil {
		return err
	}

	routes, err := s.h.ActiveRoutes.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponses(routes))
}

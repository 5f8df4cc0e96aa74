package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/account"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListBranches handles GET /api/v1/branches.
func (s *Server) ListBranches(c echo.Context) error {
	branches, err := s.h.ListBranches.Handle(c.Request().Context(), queries.NewListBranchesQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBranchResponses(branches))
}

// GetBranch handles GET /api/v1/branches/:id.
func (s *Server) GetBranch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	q, err := queries.NewGetBranchQuery(id)
	if err != nil {
		return err
	}

	found, err := s.h.GetBranch.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBranchResponse(found))
}

// FindNearestBranch handles GET /api/v1/branches/nearest?lat=&lon=.
func (s *Server) FindNearestBranch(c echo.Context) error {
	var lat, lon float64
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lon", &lon).
		BindError(); err != nil {
		return err
	}

	q, err := queries.NewFindNearestBranchQuery(lat, lon)
	if err != nil {
		return err
	}

	nearest, err := s.h.FindNearest.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBranchResponse(nearest))
}

// CreateBranch handles POST /api/v1/branches.
func (s *Server) CreateBranch(c echo.Context) error {
	var req BranchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	details, err := req.Address.details()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateBranchCommand(req.Name, details)
	if err != nil {
		return err
	}

	created, err := s.h.CreateBranch.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBranchResponse(created))
}

// UpdateBranch handles PUT /api/v1/branches/:id.
func (s *Server) UpdateBranch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req BranchRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	details, err := req.Address.details()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateBranchCommand(id, req.Name, details)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateBranch.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBranchResponse(updated))
}

// DeleteBranch handles DELETE /api/v1/branches/:id.
func (s *Server) DeleteBranch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteBranchCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteBranch.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBranchStaff handles GET /api/v1/branches/:id/staff?role=.
func (s *Server) ListBranchStaff(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var role string
	if err = runtime.BindQueryParameter("form", true, true, "role", c.QueryParams(), &role); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("role", err)
	}

	q, err := queries.NewListBranchStaffQuery(id, account.Role(role))
	if err != nil {
		return err
	}

	staff, err := s.h.BranchStaff.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponses(staff))
}

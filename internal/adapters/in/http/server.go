// Package http exposes the shipping use cases over a JSON API served by echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handler is satisfied by every command and query handler of the application layer.
type Handler[C, R any] interface {
	Handle(ctx context.Context, in C) (R, error)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc[C, R any] func(ctx context.Context, in C) (R, error)

func (f HandlerFunc[C, R]) Handle(ctx context.Context, in C) (R, error) {
	return f(ctx, in)
}

type DeleteBranchHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteBranchCommand) error
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateShipment   Handler[commands.CreateShipmentRequestCommand, *shipment.Request]
	UpdateStatus     Handler[commands.UpdateShipmentStatusCommand, *shipment.Request]
	CancelShipment   Handler[commands.CancelShipmentRequestCommand, *shipment.Request]
	AssignManager    Handler[commands.AssignManagerCommand, *shipment.Request]
	AssignDriver     Handler[commands.AssignDriverCommand, *shipment.Request]
	AssignCollector  Handler[commands.AssignCollectorCommand, *shipment.Request]
	GetShipment      Handler[queries.GetShipmentRequestQuery, *shipment.Request]
	GetByTracking    Handler[queries.GetShipmentByTrackingNumberQuery, *shipment.Request]
	ListShipments    Handler[queries.ListShipmentRequestsQuery, []queries.ShipmentRequestSummary]
	ActiveRoutes     Handler[queries.GetActiveRoutesForDriverQuery, []*shipment.Request]
	CreateBranch     Handler[commands.CreateBranchCommand, *branch.Branch]
	UpdateBranch     Handler[commands.UpdateBranchCommand, *branch.Branch]
	DeleteBranch     DeleteBranchHandler
	GetBranch        Handler[queries.GetBranchQuery, *branch.Branch]
	ListBranches     Handler[queries.ListBranchesQuery, []*branch.Branch]
	FindNearest      Handler[queries.FindNearestBranchQuery, *branch.Branch]
	BranchStaff      Handler[queries.ListBranchStaffQuery, []*account.Account]
	ProvisionAccount Handler[commands.ProvisionAccountCommand, *account.Account]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "http")}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	v1 := e.Group("/api/v1")

	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments", s.ListShipments)
	v1.GET("/shipments/tracking/:code", s.GetShipmentByTracking)
	v1.GET("/shipments/:id", s.GetShipment)
	v1.PATCH("/shipments/:id/status", s.UpdateShipmentStatus)
	v1.POST("/shipments/:id/cancel", s.CancelShipment)
	v1.POST("/shipments/:id/manager", s.AssignManager)
	v1.POST("/shipments/:id/driver", s.AssignDriver)
	v1.POST("/shipments/:id/collector", s.AssignCollector)
	v1.GET("/drivers/:id/active-routes", s.GetActiveRoutes)

	v1.GET("/branches", s.ListBranches)
	v1.POST("/branches", s.CreateBranch)
	v1.GET("/branches/nearest", s.FindNearestBranch)
	v1.GET("/branches/:id", s.GetBranch)
	v1.PUT("/branches/:id", s.UpdateBranch)
	v1.DELETE("/branches/:id", s.DeleteBranch)
	v1.GET("/branches/:id/staff", s.ListBranchStaff)

	v1.POST("/accounts", s.ProvisionAccount)
}

// NewEcho builds an echo instance with request validation against the embedded
// OpenAPI document, error mapping and one structured log line per request.
// The document is served at /swagger/.
func NewEcho(logger *slog.Logger) (*echo.Echo, error) {
	router, err := newOpenAPIRouter()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("err", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(openAPIValidator(router))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

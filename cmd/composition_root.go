package cmd

import (
	"log/slog"

	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateShipmentRequestCommandHandler() commands.CreateShipmentRequestCommandHandler {
	var f commands.FilingUoWFactory = FuncFilingUoWFactory(func() commands.FilingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentRequestCommandHandler(f, services.NewTrackingCodeGenerator())
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateCancelShipmentRequestCommandHandler() commands.CancelShipmentRequestCommandHandler {
	return commands.NewCancelShipmentRequestCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateAssignManagerCommandHandler() commands.AssignManagerCommandHandler {
	return commands.NewAssignManagerCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateAssignCollectorCommandHandler() commands.AssignCollectorCommandHandler {
	return commands.NewAssignCollectorCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateBranchCommandHandler() commands.CreateBranchCommandHandler {
	return commands.NewCreateBranchCommandHandler(c.branchUoWFactory())
}

func (c *CompositionRoot) CreateUpdateBranchCommandHandler() commands.UpdateBranchCommandHandler {
	return commands.NewUpdateBranchCommandHandler(c.branchUoWFactory())
}

func (c *CompositionRoot) CreateDeleteBranchCommandHandler() commands.DeleteBranchCommandHandler {
	return commands.NewDeleteBranchCommandHandler(c.branchUoWFactory())
}

func (c *CompositionRoot) CreateProvisionAccountCommandHandler() commands.ProvisionAccountCommandHandler {
	return commands.NewProvisionAccountCommandHandler(FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	}))
}

func (c *CompositionRoot) CreateGetShipmentRequestQueryHandler() queries.GetShipmentRequestQueryHandler {
	return queries.NewGetShipmentRequestQueryHandler(c.shipmentReader())
}

func (c *CompositionRoot) CreateGetShipmentByTrackingNumberQueryHandler() queries.GetShipmentByTrackingNumberQueryHandler {
	return queries.NewGetShipmentByTrackingNumberQueryHandler(c.shipmentReader())
}

func (c *CompositionRoot) CreateGetActiveRoutesForDriverQueryHandler() queries.GetActiveRoutesForDriverQueryHandler {
	return queries.NewGetActiveRoutesForDriverQueryHandler(c.shipmentReader())
}

func (c *CompositionRoot) CreateListShipmentRequestsQueryHandler() queries.ListShipmentRequestsQueryHandler {
	return queries.NewListShipmentRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchQueryHandler() queries.GetBranchQueryHandler {
	return queries.NewGetBranchQueryHandler(c.branchReader())
}

func (c *CompositionRoot) CreateListBranchesQueryHandler() queries.ListBranchesQueryHandler {
	return queries.NewListBranchesQueryHandler(c.branchReader())
}

func (c *CompositionRoot) CreateFindNearestBranchQueryHandler() queries.FindNearestBranchQueryHandler {
	return queries.NewFindNearestBranchQueryHandler(c.branchReader())
}

func (c *CompositionRoot) CreateListBranchStaffQueryHandler() queries.ListBranchStaffQueryHandler {
	return queries.NewListBranchStaffQueryHandler(c.branchReader(), c.accountReader())
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateShipment:   c.CreateCreateShipmentRequestCommandHandler(),
		UpdateStatus:     c.CreateUpdateShipmentStatusCommandHandler(),
		CancelShipment:   c.CreateCancelShipmentRequestCommandHandler(),
		AssignManager:    c.CreateAssignManagerCommandHandler(),
		AssignDriver:     c.CreateAssignDriverCommandHandler(),
		AssignCollector:  c.CreateAssignCollectorCommandHandler(),
		GetShipment:      c.CreateGetShipmentRequestQueryHandler(),
		GetByTracking:    c.CreateGetShipmentByTrackingNumberQueryHandler(),
		ListShipments:    c.CreateListShipmentRequestsQueryHandler(),
		ActiveRoutes:     c.CreateGetActiveRoutesForDriverQueryHandler(),
		CreateBranch:     c.CreateCreateBranchCommandHandler(),
		UpdateBranch:     c.CreateUpdateBranchCommandHandler(),
		DeleteBranch:     c.CreateDeleteBranchCommandHandler(),
		GetBranch:        c.CreateGetBranchQueryHandler(),
		ListBranches:     c.CreateListBranchesQueryHandler(),
		FindNearest:      c.CreateFindNearestBranchQueryHandler(),
		BranchStaff:      c.CreateListBranchStaffQueryHandler(),
		ProvisionAccount: c.CreateProvisionAccountCommandHandler(),
	}, c.logger)
}

func (c *CompositionRoot) requestUoWFactory() commands.RequestUoWFactory {
	return FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) branchUoWFactory() commands.BranchUoWFactory {
	return FuncBranchUoWFactory(func() commands.BranchUoW {
		return c.uowFactory.Create()
	})
}

// Readers come from a unit of work that never begins, so they run on the pool.
func (c *CompositionRoot) shipmentReader() queries.ShipmentReader {
	return c.uowFactory.Create().ShipmentRequestRepository()
}

func (c *CompositionRoot) branchReader() queries.BranchReader {
	return c.uowFactory.Create().BranchRepository()
}

func (c *CompositionRoot) accountReader() queries.AccountReader {
	return c.uowFactory.Create().AccountRepository()
}

type FuncFilingUoWFactory func() commands.FilingUoW

func (f FuncFilingUoWFactory) Create() commands.FilingUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncBranchUoWFactory func() commands.BranchUoW

func (f FuncBranchUoWFactory) Create() commands.BranchUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

package cmd_test

import (
	"context"
	"testing"
	"time"

	"shipping/cmd"
	postgres_adapter "shipping/internal/adapters/out/postgres"
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type BootstrapIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func TestBootstrapIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(BootstrapIntegrationTestSuite))
}

func (suite *BootstrapIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *BootstrapIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipment_requests, accounts").Error)
}

func (suite *BootstrapIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BootstrapIntegrationTestSuite) TestProvisionAdmin_IsIdempotent() {
	ctx := context.Background()
	configs := cmd.Config{AdminID: "6f1c2a8e-5d4b-4c3a-9e8f-0a1b2c3d4e5f", AdminName: "Administrador del Sistema"}
	app := cmd.NewCompositionRoot(configs, suite.db, discard())

	suite.Require().NoError(app.ProvisionAdmin(ctx))
	suite.Require().NoError(app.ProvisionAdmin(ctx))

	id, err := kernel.UUIDFromString(configs.AdminID)
	suite.Require().NoError(err)
	admin, err := postgres_adapter.NewGormUnitOfWorkFactory(suite.db).Create().AccountRepository().Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(account.RoleAdmin, admin.Role())
	suite.Equal("Administrador del Sistema", admin.Name())
	suite.Nil(admin.BranchID())

	var count int64
	suite.Require().NoError(suite.db.Table("accounts").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *BootstrapIntegrationTestSuite) TestProvisionAdmin_InvalidID() {
	app := cmd.NewCompositionRoot(cmd.Config{AdminID: "admin@empresa.com", AdminName: "x"}, suite.db, discard())

	suite.Require().Error(app.ProvisionAdmin(context.Background()))
}

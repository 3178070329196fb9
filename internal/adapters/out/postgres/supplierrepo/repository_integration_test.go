package supplierrepo_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/supplierrepo"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// SupplierRepositoryIntegrationTestSuite provides integration tests for the
// supplier repository using PostgreSQL containers.
type SupplierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *supplierrepo.GormSupplierRepository
	tracker    *MockAggregateTracker
}

func (suite *SupplierRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&supplierrepo.SupplierDTO{}))
}

func (suite *SupplierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE suppliers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = supplierrepo.NewGormSupplierRepository(suite.db, suite.tracker)
}

func (suite *SupplierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestAdd_ValidSupplier_Success() {
	ctx := context.Background()

	testSupplier, err := supplier.NewSupplier("Acme Industrial", "sales@acme.example")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testSupplier.ID(), testSupplier).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testSupplier))

	var count int64
	suite.Require().NoError(suite.db.Model(&supplierrepo.SupplierDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestGet_ExistingSupplier_ReturnsSupplier() {
	ctx := context.Background()

	original, err := supplier.NewSupplier("Globex Corp", "orders@globex.example")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.IsEqual(original))
	suite.Equal("Globex Corp", retrieved.Name())
	suite.Equal("orders@globex.example", retrieved.ContactEmail())
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestGet_NonExistentSupplier_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestGetAll_ReturnsSuppliersSortedByName() {
	ctx := context.Background()

	zenith, err := supplier.NewSupplier("Zenith Supplies", "")
	suite.Require().NoError(err)
	acme, err := supplier.NewSupplier("Acme Industrial", "")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, zenith))
	suite.Require().NoError(suite.repository.Add(ctx, acme))

	suppliers, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(suppliers, 2)
	suite.Equal("Acme Industrial", suppliers[0].Name())
	suite.Equal("Zenith Supplies", suppliers[1].Name())
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestGetAll_EmptyDatabase_ReturnsEmptySlice() {
	ctx := context.Background()

	suppliers, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(suppliers)
}

func TestSupplierRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(SupplierRepositoryIntegrationTestSuite))
}

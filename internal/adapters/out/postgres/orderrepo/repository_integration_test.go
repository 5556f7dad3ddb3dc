package orderrepo_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	seq        int
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ByExternalID_ReturnsOrder() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	ref, err := order.NewRef(original.ExternalID())
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, ref)
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.ExternalID(), retrieved.ExternalID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.Address(), retrieved.Address())
	suite.Equal(original.Location().Lat(), retrieved.Location().Lat())
	suite.Equal(original.Location().Lng(), retrieved.Location().Lng())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.DriverID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ByInternalUUID_ReturnsOrder() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, order.RefFromID(original.ID()))
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.ExternalID(), retrieved.ExternalID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	ref, err := order.NewRef("ORD-MISSING")
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, ref)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AssignPersistsDriverBinding() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	driverID := kernel.NewUUID()
	suite.Require().NoError(testOrder.Assign(driverID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, order.RefFromID(testOrder.ID()))
	suite.Require().NoError(err)

	suite.Equal(order.Assigned, retrieved.Status())
	suite.Require().NotNil(retrieved.DriverID())
	suite.Equal(driverID, *retrieved.DriverID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnassignClearsDriverColumn() {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	assigned := suite.createTestOrderWithStatus(order.Assigned, &driverID)
	suite.tracker.On("TrackAggregate", assigned.ID(), assigned).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	released, err := assigned.Unassign()
	suite.Require().NoError(err)
	suite.Equal(driverID, released)
	suite.Require().NoError(suite.repository.Update(ctx, assigned))

	// The cleared binding must come back as NULL, not as the stale driver id.
	retrieved, err := suite.repository.Get(ctx, order.RefFromID(assigned.ID()))
	suite.Require().NoError(err)
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.DriverID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder()

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstInPendingStatus_ReturnsOldestPendingOrder() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	oldest := suite.createTestOrderRestoredAt(order.Pending, nil, time.Now().UTC().Add(-2*time.Hour))
	newer := suite.createTestOrderRestoredAt(order.Pending, nil, time.Now().UTC().Add(-1*time.Hour))
	driverID := kernel.NewUUID()
	assigned := suite.createTestOrderRestoredAt(order.Assigned, &driverID, time.Now().UTC().Add(-3*time.Hour))

	suite.Require().NoError(suite.repository.Add(ctx, oldest))
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	retrieved, err := suite.repository.GetFirstInPendingStatus(ctx)
	suite.Require().NoError(err)

	suite.Equal(oldest.ID(), retrieved.ID())
	suite.Equal(order.Pending, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstInPendingStatus_NoPendingOrders_ReturnsNotFoundError() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	driverID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrderWithStatus(order.Assigned, &driverID)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrderWithStatus(order.Delivered, &driverID)))

	retrieved, err := suite.repository.GetFirstInPendingStatus(ctx)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInAssignedStatus_ReturnsOnlyAssignedOrders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	driverID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder()))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrderWithStatus(order.Assigned, &driverID)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrderWithStatus(order.Assigned, &driverID)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrderWithStatus(order.Delivered, &driverID)))

	assignedOrders, err := suite.repository.GetAllInAssignedStatus(ctx)
	suite.Require().NoError(err)

	suite.Len(assignedOrders, 2)
	for _, assignedOrder := range assignedOrders {
		suite.Equal(order.Assigned, assignedOrder.Status())
		suite.Require().NotNil(assignedOrder.DriverID())
		suite.Equal(driverID, *assignedOrder.DriverID())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInAssignedStatus_NoAssignedOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	driverID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder()))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrderWithStatus(order.Delivered, &driverID)))

	assignedOrders, err := suite.repository.GetAllInAssignedStatus(ctx)
	suite.Require().NoError(err)

	suite.Empty(assignedOrders)
	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with empty reference",
			operation: func() error {
				_, err := suite.repository.Get(context.Background(), order.Ref{})
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				ref, err := order.NewRef("ORD-NOWHERE")
				suite.Require().NoError(err)
				_, err = suite.repository.Get(context.Background(), ref)
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent order",
			operation: func() error {
				return suite.repository.Update(context.Background(), suite.createTestOrder())
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	initialOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, initialOrder))

	results := make(chan *order.Order, 3)
	errCh := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.Get(ctx, order.RefFromID(initialOrder.ID()))
			if readErr != nil {
				errCh <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errCh:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// nextExternalID yields unique external identifiers within a test run.
func (suite *OrderRepositoryIntegrationTestSuite) nextExternalID() string {
	suite.seq++
	return fmt.Sprintf("ORD-%04d", suite.seq)
}

// createTestOrder creates a basic pending test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		suite.nextExternalID(),
		kernel.NewUUID(),
		"1 Main St",
		kernel.NewLocation(40.7128, -74.0060),
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderWithStatus creates a test order in the given status with an optional driver.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatus(
	status order.Status, driverID *kernel.UUID,
) *order.Order {
	return suite.createTestOrderRestoredAt(status, driverID, time.Now().UTC())
}

// createTestOrderRestoredAt creates a test order with explicit stored timestamps.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderRestoredAt(
	status order.Status, driverID *kernel.UUID, createdAt time.Time,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		suite.nextExternalID(),
		kernel.NewUUID(),
		driverID,
		"1 Main St",
		kernel.NewLocation(40.7128, -74.0060),
		status,
		createdAt,
		createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

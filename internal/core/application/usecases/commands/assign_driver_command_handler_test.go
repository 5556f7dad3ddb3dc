package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignCommand(t *testing.T, testOrder *order.Order, testDriver *driver.Driver) commands.AssignDriverCommand {
	t.Helper()
	ref, err := order.NewRef(testOrder.ExternalID())
	require.NoError(t, err)
	cmd, err := commands.NewAssignDriverCommand(ref, testDriver.ID())
	require.NoError(t, err)
	return cmd
}

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	testDriver := newAvailableDriver(t, 1, 1)
	cmd := newAssignCommand(t, testOrder, testDriver)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderRef()).Return(testOrder, nil).Once(),
		driverRepo.On("GetAvailable", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("UpdateStatus", ctx, testDriver.ID(), driver.Busy).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, discardLogger())
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, assigned.Status())
	require.NotNil(t, assigned.DriverID())
	assert.Equal(t, testDriver.ID(), *assigned.DriverID())
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockAssignmentUoWFactory)
	handler := commands.NewAssignDriverCommandHandler(factory, discardLogger())

	_, err := handler.Handle(ctx, commands.AssignDriverCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDriverCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignDriverCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	testDriver := newAvailableDriver(t, 1, 1)
	cmd := newAssignCommand(t, testOrder, testDriver)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(new(MockDriverRepository)).Once(),
		orderRepo.On("Get", ctx, cmd.OrderRef()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignDriverCommandHandler_Handle_DriverNotAvailable(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	testDriver := newAvailableDriver(t, 1, 1)
	cmd := newAssignCommand(t, testOrder, testDriver)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderRef()).Return(testOrder, nil).Once(),
		// The availability-filtered lookup misses both busy and absent drivers.
		driverRepo.On("GetAvailable", ctx, testDriver.ID()).
			Return(nil, errs.NewObjectNotFoundError("driver", testDriver.ID())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, driver.ErrDriverIsNotAvailable)
	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	// No writes escape the rolled-back transaction.
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	driverRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_OrderAlreadyAssigned(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	previousDriver := newAvailableDriver(t, 2, 2)
	require.NoError(t, testOrder.Assign(previousDriver.ID()))

	testDriver := newAvailableDriver(t, 1, 1)
	cmd := newAssignCommand(t, testOrder, testDriver)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderRef()).Return(testOrder, nil).Once(),
		driverRepo.On("GetAvailable", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrOrderAlreadyAssigned)
	// The stored assignment is untouched.
	require.NotNil(t, testOrder.DriverID())
	assert.Equal(t, previousDriver.ID(), *testOrder.DriverID())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	driverRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_DriverStatusWriteFails(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	testDriver := newAvailableDriver(t, 1, 1)
	cmd := newAssignCommand(t, testOrder, testDriver)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderRef()).Return(testOrder, nil).Once(),
		driverRepo.On("GetAvailable", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("UpdateStatus", ctx, testDriver.ID(), driver.Busy).
			Return(errors.New("connection reset")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, discardLogger())
	assigned, err := handler.Handle(ctx, cmd)

	// The order commit already happened; the failed driver write is logged
	// and the operation still succeeds.
	require.NoError(t, err)
	assert.Equal(t, order.Assigned, assigned.Status())
	driverRepo.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	testDriver := newAvailableDriver(t, 1, 1)
	cmd := newAssignCommand(t, testOrder, testDriver)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderRef()).Return(testOrder, nil).Once(),
		driverRepo.On("GetAvailable", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	driverRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

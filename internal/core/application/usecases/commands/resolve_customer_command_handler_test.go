package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveCustomerCommandHandler_Handle_CreatesWhenAbsent(t *testing.T) {
	ctx := t.Context()

	chatHandle := int64(778899)
	cmd, err := commands.NewResolveCustomerCommand("Ada", "+15550100", &chatHandle, nil)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByPhone", ctx, "+15550100").Return(nil, errs.ErrObjectNotFound).Once(),
		customerRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveCustomerCommandHandler(factory)
	resolved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Ada", resolved.Name())
	assert.Equal(t, "+15550100", resolved.Phone())
	require.NotNil(t, resolved.ChatHandle())
	assert.Equal(t, chatHandle, *resolved.ChatHandle())
	customerRepo.AssertExpectations(t)
}

func TestResolveCustomerCommandHandler_Handle_PatchesChangedDetails(t *testing.T) {
	ctx := t.Context()

	address := "7 Side St"
	cmd, err := commands.NewResolveCustomerCommand("Ada", "+15550100", nil, &address)
	require.NoError(t, err)

	existing, err := customer.NewCustomer(kernel.NewUUID(), "A. Lovelace", "+15550100", nil, nil)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByPhone", ctx, "+15550100").Return(existing, nil).Once(),
		customerRepo.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveCustomerCommandHandler(factory)
	resolved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, existing.ID(), resolved.ID())
	assert.Equal(t, "Ada", resolved.Name())
	require.NotNil(t, resolved.Address())
	assert.Equal(t, address, *resolved.Address())
	customerRepo.AssertExpectations(t)
}

func TestResolveCustomerCommandHandler_Handle_UnchangedIsNoWrite(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewResolveCustomerCommand("Ada", "+15550100", nil, nil)
	require.NoError(t, err)

	existing, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "+15550100", nil, nil)
	require.NoError(t, err)
	before := existing.UpdatedAt()

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByPhone", ctx, "+15550100").Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveCustomerCommandHandler(factory)
	resolved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, existing.IsEqual(resolved))
	assert.Equal(t, before, resolved.UpdatedAt())
	customerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	customerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestResolveCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockCustomerUoWFactory)
	handler := commands.NewResolveCustomerCommandHandler(factory)

	_, err := handler.Handle(ctx, commands.ResolveCustomerCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrResolveCustomerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewResolveCustomerCommand_RequiresNameAndPhone(t *testing.T) {
	_, err := commands.NewResolveCustomerCommand("", "+15550100", nil, nil)
	require.ErrorIs(t, err, customer.ErrNameIsRequired)

	_, err = commands.NewResolveCustomerCommand("Ada", "", nil, nil)
	require.ErrorIs(t, err, customer.ErrPhoneIsRequired)
}

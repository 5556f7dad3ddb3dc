package commands

import (
	"context"

	"dispatch/internal/core/domain/model/customer"
)

// UpdateCustomerCommandHandler applies partial updates to customer records.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer patches.
// Requires a CustomerUoWFactory for transactional persistence.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the patch command and returns the updated customer.
func (h UpdateCustomerCommandHandler) Handle(
	ctx context.Context,
	command UpdateCustomerCommand,
) (*customer.Customer, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	aggregate, err := customerRepo.Get(ctx, command.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ApplyPatch(command.Patch()); err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

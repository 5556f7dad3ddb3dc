package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies partial updates to orders.
// Status changes through this path must keep the driver binding consistent:
// a patch cannot move an order out of the pending/assigned machine in a way
// that contradicts its driver column.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order patches.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the patch command and returns the updated order.
func (h UpdateOrderCommandHandler) Handle(
	ctx context.Context,
	command UpdateOrderCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderRef())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ApplyPatch(command.Patch()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order acceptance.
// Resolves the customer by phone, inserts the order in the pending status
// unless the command carries another driverless starting status, and fires a
// best-effort order_created notification after commit.
type CreateOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
	notifier   ports.OrderNotifier
	log        *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order acceptance.
// Requires a CustomerOrderUoWFactory so the customer resolution and the order
// insert share one transaction, and an OrderNotifier for the post-commit event.
func NewCreateOrderCommandHandler(
	uowFactory CustomerOrderUoWFactory,
	notifier ports.OrderNotifier,
	log *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the order creation command and returns the created order.
// The customer record is resolved (created or patched) under the observed
// phone number, then the order is inserted bound to that customer. The
// order_created notification runs after commit; a notification failure is
// logged at warn level and does not fail the operation.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	command CreateOrderCommand,
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

	resolved, err := resolveCustomer(
		ctx,
		uow.CustomerRepository(),
		command.CustomerName(),
		command.CustomerPhone(),
		command.CustomerChatHandle(),
		command.CustomerAddress(),
	)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		command.OrderID(),
		command.ExternalID(),
		resolved.ID(),
		command.Address(),
		command.Location(),
	)
	if err != nil {
		return nil, err
	}

	if status := command.InitialStatus(); status != nil && *status != order.Pending {
		if err = created.ApplyPatch(order.Patch{Status: status}); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.NotifyOrderCreated(ctx, created); err != nil {
		h.log.WarnContext(ctx, "order_created notification failed",
			"order_id", created.ExternalID(),
			"error", err,
		)
	}

	return created, nil
}

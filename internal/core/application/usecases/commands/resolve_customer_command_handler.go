package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ResolveCustomerCommandHandler resolves customer records by phone number.
// Looks up the customer under the observed phone; registers a new record when
// none exists, or merges changed details into the existing one. An unchanged
// observation is a no-write fast path.
type ResolveCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewResolveCustomerCommandHandler creates a handler for customer resolution.
// Requires a CustomerUoWFactory for transactional persistence.
func NewResolveCustomerCommandHandler(uowFactory CustomerUoWFactory) ResolveCustomerCommandHandler {
	return ResolveCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command and returns the canonical customer
// record for the phone number, freshly created or brought up to date.
func (h ResolveCustomerCommandHandler) Handle(
	ctx context.Context,
	command ResolveCustomerCommand,
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

	resolved, err := resolveCustomer(
		ctx,
		uow.CustomerRepository(),
		command.Name(),
		command.Phone(),
		command.ChatHandle(),
		command.Address(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return resolved, nil
}

// resolveCustomer performs the lookup-or-create-or-patch cycle against the
// given repository. Shared between the standalone resolution command and
// order creation, which resolves the customer inside its own transaction.
func resolveCustomer(
	ctx context.Context,
	customerRepo ports.CustomerRepository,
	name string,
	phone string,
	chatHandle *int64,
	address *string,
) (*customer.Customer, error) {
	existing, err := customerRepo.GetByPhone(ctx, phone)
	if errors.Is(err, errs.ErrObjectNotFound) {
		created, newErr := customer.NewCustomer(kernel.NewUUID(), name, phone, chatHandle, address)
		if newErr != nil {
			return nil, newErr
		}

		if addErr := customerRepo.Add(ctx, created); addErr != nil {
			return nil, addErr
		}

		return created, nil
	}
	if err != nil {
		return nil, err
	}

	patch := existing.ChangesFrom(name, chatHandle, address)
	if patch.IsEmpty() {
		return existing, nil
	}

	if err = existing.ApplyPatch(patch); err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

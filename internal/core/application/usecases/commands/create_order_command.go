package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to accept a new delivery order.
// Carries the order details together with the observed customer contact
// details; the handler resolves the customer by phone before inserting.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(
//	    orderID, "ORD-1001", "12 Main St", kernel.NewLocation(41.01, 28.97),
//	    nil, "Ada", "+15550100", nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	externalID    string
	address       string
	location      kernel.Location
	initialStatus *order.Status

	customerName       string
	customerPhone      string
	customerChatHandle *int64
	customerAddress    *string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to accept a new delivery order.
// Validates that the order ID is a valid UUID and that the external order id,
// delivery address, customer name and customer phone are not empty. A nil
// initial status means the order starts pending; a provided status must be a
// known value that is reachable without a driver.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	externalID string,
	address string,
	location kernel.Location,
	initialStatus *order.Status,
	customerName string,
	customerPhone string,
	customerChatHandle *int64,
	customerAddress *string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setExternalID(externalID),
		orderCommand.setAddress(address),
		orderCommand.setLocation(location),
		orderCommand.setInitialStatus(initialStatus),
		orderCommand.setCustomerName(customerName),
		orderCommand.setCustomerPhone(customerPhone),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.customerChatHandle = customerChatHandle
	orderCommand.customerAddress = customerAddress

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the internal identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ExternalID returns the external-facing order identifier.
func (c CreateOrderCommand) ExternalID() string {
	return c.externalID
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Location returns the delivery coordinates.
func (c CreateOrderCommand) Location() kernel.Location {
	return c.location
}

// InitialStatus returns the optional caller-supplied starting status.
// Nil means the pending default.
func (c CreateOrderCommand) InitialStatus() *order.Status {
	return c.initialStatus
}

// CustomerName returns the observed customer name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer phone number used for deduplication.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerChatHandle returns the optional messenger chat handle.
func (c CreateOrderCommand) CustomerChatHandle() *int64 {
	return c.customerChatHandle
}

// CustomerAddress returns the optional customer address.
func (c CreateOrderCommand) CustomerAddress() *string {
	return c.customerAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setExternalID(externalID string) error {
	if externalID == "" {
		return order.ErrExternalIDIsRequired
	}

	c.externalID = externalID
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return order.ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CreateOrderCommand) setInitialStatus(initialStatus *order.Status) error {
	if initialStatus == nil {
		return nil
	}

	// A freshly created order has no driver, so driver-requiring statuses
	// are rejected up front.
	if err := errors.Join(
		initialStatus.Validate(),
		initialStatus.ValidateCanHaveDriver(false),
	); err != nil {
		return err
	}

	c.initialStatus = initialStatus
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return customer.ErrNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(customerPhone string) error {
	if customerPhone == "" {
		return customer.ErrPhoneIsRequired
	}

	c.customerPhone = customerPhone
	return nil
}

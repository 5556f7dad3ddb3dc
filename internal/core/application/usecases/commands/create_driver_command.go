package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver.
// Starting coordinates are optional; without them the driver is not eligible
// for automatic assignment until a location update arrives.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID     kernel.UUID
	name         string
	phone        string
	vehicleType  string
	licensePlate string
	location     *kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
// Validates that the driver ID is a valid UUID and that name, phone, vehicle
// type and license plate are not empty.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	name string,
	phone string,
	vehicleType string,
	licensePlate string,
	location *kernel.Location,
) (CreateDriverCommand, error) {
	driverCommand := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driverCommand.setDriverID(driverID),
		driverCommand.setName(name),
		driverCommand.setPhone(phone),
		driverCommand.setVehicleType(vehicleType),
		driverCommand.setLicensePlate(licensePlate),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	driverCommand.location = location

	return driverCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDriverCommandIsNotConstructed if validation fails.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver phone number.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// VehicleType returns the vehicle type description.
func (c CreateDriverCommand) VehicleType() string {
	return c.vehicleType
}

// LicensePlate returns the vehicle license plate.
func (c CreateDriverCommand) LicensePlate() string {
	return c.licensePlate
}

// Location returns the optional starting coordinates.
func (c CreateDriverCommand) Location() *kernel.Location {
	return c.location
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return driver.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return driver.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateDriverCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return driver.ErrVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *CreateDriverCommand) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return driver.ErrLicensePlateIsRequired
	}

	c.licensePlate = licensePlate
	return nil
}

package driver

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a driver without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrVehicleTypeIsRequired is returned when attempting to create a driver without a vehicle type.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicle_type")
	// ErrLicensePlateIsRequired is returned when attempting to create a driver without a license plate.
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("license_plate")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrDriverIsNotAvailable is returned when binding a driver that is not in the available status.
	ErrDriverIsNotAvailable = errs.NewPreconditionFailedError("driver is not available")
	// ErrNoFieldsToUpdate is returned when an empty patch is applied.
	ErrNoFieldsToUpdate = errs.NewValueIsRequiredError("no fields to update")
)

// Driver represents a delivery driver in the system.
// It is an aggregate root that manages driver identity, availability, and the
// last reported location.
//
// Key responsibilities:
//   - Holding identity fields (name, phone, vehicle type, license plate)
//   - Tracking the availability status used by assignment
//   - Tracking the reported location as an all-or-nothing coordinate pair
//
// Business rules:
//   - A freshly registered driver starts as available
//   - Only an available driver can be marked busy
//   - Location is optional: drivers without a reported location exist but are
//     excluded from automatic assignment
//   - The last-location-update timestamp moves only when the location does
type Driver struct {
	id                 kernel.UUID
	name               string
	phone              string
	vehicleType        string
	licensePlate       string
	location           *kernel.Location
	status             Status
	lastLocationUpdate *time.Time
	createdAt          time.Time
	updatedAt          time.Time
	guard              guard.ConstructorGuard
}

// NewDriver creates a new Driver in the available status.
// The location is optional; when provided, the last-location-update timestamp
// is initialized alongside it.
func NewDriver(
	id kernel.UUID,
	name string,
	phone string,
	vehicleType string,
	licensePlate string,
	location *kernel.Location,
) (*Driver, error) {
	now := time.Now().UTC()
	driver := &Driver{
		status:    Available,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setVehicleType(vehicleType),
		driver.setLicensePlate(licensePlate),
		driver.setLocation(location),
	); err != nil {
		return nil, err
	}

	if location != nil {
		driver.lastLocationUpdate = &now
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// preserving its stored status and timestamps.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone string,
	vehicleType string,
	licensePlate string,
	location *kernel.Location,
	status Status,
	lastLocationUpdate *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Driver, error) {
	driver, err := NewDriver(id, name, phone, vehicleType, licensePlate, location)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	driver.status = status
	driver.lastLocationUpdate = lastLocationUpdate
	driver.createdAt = createdAt
	driver.updatedAt = updatedAt
	return driver, nil
}

// Validate ensures the Driver instance was properly constructed through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// VehicleType returns the driver's vehicle type.
func (d *Driver) VehicleType() string {
	return d.vehicleType
}

// LicensePlate returns the driver's license plate.
func (d *Driver) LicensePlate() string {
	return d.licensePlate
}

// Location returns the driver's last reported location.
// Returns nil when the driver has never reported a location.
func (d *Driver) Location() *kernel.Location {
	return d.location
}

// HasLocation reports whether the driver has a reported location.
func (d *Driver) HasLocation() bool {
	return d.location != nil
}

// Status returns the driver's current availability status.
func (d *Driver) Status() Status {
	return d.status
}

// LastLocationUpdate returns the time of the last location report, or nil.
func (d *Driver) LastLocationUpdate() *time.Time {
	return d.lastLocationUpdate
}

// CreatedAt returns the creation timestamp.
func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (d *Driver) UpdatedAt() time.Time {
	return d.updatedAt
}

// MarkBusy transitions the driver from available to busy.
// Returns ErrDriverIsNotAvailable if the driver is not currently available.
func (d *Driver) MarkBusy() error {
	if err := d.Validate(); err != nil {
		return err
	}

	if d.status != Available {
		return ErrDriverIsNotAvailable
	}

	d.status = Busy
	d.updatedAt = time.Now().UTC()
	return nil
}

// MarkAvailable returns the driver to the available status.
// The transition is unconditional: it is the second half of an unassignment
// and must succeed regardless of the state the driver record is found in.
func (d *Driver) MarkAvailable() error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.status = Available
	d.updatedAt = time.Now().UTC()
	return nil
}

// MoveTo records a new reported location and advances the
// last-location-update timestamp.
func (d *Driver) MoveTo(location kernel.Location) error {
	if err := errors.Join(d.Validate(), location.Validate()); err != nil {
		return err
	}

	now := time.Now().UTC()
	d.location = &location
	d.lastLocationUpdate = &now
	d.updatedAt = now
	return nil
}

// ApplyPatch applies a partial update to the driver, touching only the fields
// the patch carries, plus the update timestamp. A patched location advances
// the last-location-update timestamp the same way MoveTo does.
// Returns ErrNoFieldsToUpdate when the patch is empty.
func (d *Driver) ApplyPatch(patch Patch) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if patch.Status != nil {
		if err := patch.Status.Validate(); err != nil {
			return err
		}
	}

	if patch.Name != nil {
		if err := d.setName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.Phone != nil {
		if err := d.setPhone(*patch.Phone); err != nil {
			return err
		}
	}
	if patch.VehicleType != nil {
		if err := d.setVehicleType(*patch.VehicleType); err != nil {
			return err
		}
	}
	if patch.LicensePlate != nil {
		if err := d.setLicensePlate(*patch.LicensePlate); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		d.status = *patch.Status
	}

	now := time.Now().UTC()
	if patch.Location != nil {
		if err := patch.Location.Validate(); err != nil {
			return err
		}
		d.location = patch.Location
		d.lastLocationUpdate = &now
	}

	d.updatedAt = now
	return nil
}

// Patch is an explicit partial-update structure for the driver's mutable
// fields: an optional value per field, applied field-by-field.
type Patch struct {
	Name         *string
	Phone        *string
	VehicleType  *string
	LicensePlate *string
	Status       *Status
	Location     *kernel.Location
}

// IsEmpty reports whether the patch carries no changes.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.VehicleType == nil &&
		p.LicensePlate == nil && p.Status == nil && p.Location == nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	d.vehicleType = vehicleType
	return nil
}

func (d *Driver) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return ErrLicensePlateIsRequired
	}
	d.licensePlate = licensePlate
	return nil
}

func (d *Driver) setLocation(location *kernel.Location) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}

package order

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrRefIsRequired is returned when constructing a Ref from an empty string.
var ErrRefIsRequired = errs.NewValueIsRequiredError("order reference")

// Ref is a typed lookup key for orders. Callers may address an order either
// by its external order_id or by its internal primary key, and the two are
// used interchangeably at the API boundary. Ref normalizes that duality into
// one value: repositories resolve it by trying the external identifier first
// and falling back to the internal key when the raw value parses as a UUID.
type Ref struct {
	raw string
}

// NewRef creates an order reference from its raw string form.
func NewRef(raw string) (Ref, error) {
	if raw == "" {
		return Ref{}, ErrRefIsRequired
	}
	return Ref{raw: raw}, nil
}

// RefFromID creates an order reference addressing an order by its internal key.
func RefFromID(id kernel.UUID) Ref {
	return Ref{raw: id.String()}
}

// String returns the raw reference value.
func (r Ref) String() string {
	return r.raw
}

// Validate checks the reference carries a value.
func (r Ref) Validate() error {
	if r.raw == "" {
		return ErrRefIsRequired
	}
	return nil
}

// AsUUID attempts to interpret the reference as an internal primary key.
// The second return value reports whether the raw value is a well-formed UUID.
func (r Ref) AsUUID() (uuid.UUID, bool) {
	id, err := uuid.Parse(r.raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

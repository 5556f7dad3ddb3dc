// Package customer contains the customer aggregate and its reconciliation rules.
// The phone number acts as the natural deduplication key: resolving the same
// phone twice yields the same canonical record, with later observations applied
// as field-level partial updates.
package customer

// Package driver contains the driver aggregate: identity, the
// available/busy status machine manipulated by assignment, and the optional
// reported location used by nearest-driver selection.
package driver

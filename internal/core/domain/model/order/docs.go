// Package order contains the order aggregate and its assignment state
// machine. The pending/assigned pair is the only transition owned here;
// later in-flight states are stored and listed but never entered by
// assignment. The Ref type normalizes the dual internal-id/external-id
// lookup used at the API boundary.
package order

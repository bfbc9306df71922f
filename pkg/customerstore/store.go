// Package customerstore persists customer records keyed by an opaque
// customer id.
package customerstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
)

// UpdateFunc derives the record to persist from the current one. Returning
// an error aborts the update without writing.
type UpdateFunc func(current *customer.Record) (*customer.Record, error)

// Store defines customer record persistence. Writes are mutually exclusive
// per store instance.
type Store interface {
	Get(ctx context.Context, id string) (*customer.Record, error)
	Set(ctx context.Context, id string, rec *customer.Record) error
	// Update performs a locked read-modify-write of one record.
	Update(ctx context.Context, id string, fn UpdateFunc) (*customer.Record, error)
}

// UnknownCustomerError is returned when no record is stored under ID.
type UnknownCustomerError struct {
	ID string
}

func (e *UnknownCustomerError) Error() string {
	return fmt.Sprintf("unknown customer %q", e.ID)
}

// IsUnknownCustomer reports whether err is an UnknownCustomerError.
func IsUnknownCustomer(err error) bool {
	var unknown *UnknownCustomerError
	return errors.As(err, &unknown)
}

package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
)

// InvalidCustomerError is returned when a record cannot back a claim.
type InvalidCustomerError struct {
	Record *customer.Record
	Reason string
}

func (e *InvalidCustomerError) Error() string {
	return fmt.Sprintf("invalid customer %s: %s", identityOf(e.Record), e.Reason)
}

// IncompleteIdentityError is returned when the target identity exists but
// lacks the registration required to hold claims.
type IncompleteIdentityError struct {
	Record *customer.Record
}

func (e *IncompleteIdentityError) Error() string {
	return fmt.Sprintf("ledger identity %s is not registered for claims", identityOf(e.Record))
}

// TooManyIdentitiesError is returned when a claim query spans several identities.
type TooManyIdentitiesError struct {
	Record *customer.Record
	Count  int
}

func (e *TooManyIdentitiesError) Error() string {
	return fmt.Sprintf("claims for %s reference %d identities", identityOf(e.Record), e.Count)
}

// TooManyClaimsError is returned when more than one jurisdiction claim exists.
type TooManyClaimsError struct {
	Record *customer.Record
	Count  int
}

func (e *TooManyClaimsError) Error() string {
	return fmt.Sprintf("found %d jurisdiction claims for %s", e.Count, identityOf(e.Record))
}

// InvalidServiceProviderIdentityError is returned when the issuing identity
// is unavailable.
type InvalidServiceProviderIdentityError struct {
	Err error
}

func (e *InvalidServiceProviderIdentityError) Error() string {
	return fmt.Sprintf("invalid service provider identity: %v", e.Err)
}

func (e *InvalidServiceProviderIdentityError) Unwrap() error {
	return e.Err
}

// LedgerTimeoutError is returned when a ledger call exceeds its deadline.
type LedgerTimeoutError struct {
	Operation string
	Timeout   time.Duration
}

func (e *LedgerTimeoutError) Error() string {
	return fmt.Sprintf("ledger %s timed out after %s", e.Operation, e.Timeout)
}

func (e *LedgerTimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

// IsBusinessRule reports whether err is a rule violation the caller should
// surface rather than retry.
func IsBusinessRule(err error) bool {
	var (
		invalid    *InvalidCustomerError
		incomplete *IncompleteIdentityError
		identities *TooManyIdentitiesError
		claims     *TooManyClaimsError
		provider   *InvalidServiceProviderIdentityError
	)
	return errors.As(err, &invalid) ||
		errors.As(err, &incomplete) ||
		errors.As(err, &identities) ||
		errors.As(err, &claims) ||
		errors.As(err, &provider)
}

// IsTimeout reports whether err is a ledger timeout.
func IsTimeout(err error) bool {
	var timeout *LedgerTimeoutError
	return errors.As(err, &timeout)
}

func errorType(err error) string {
	var (
		invalid    *InvalidCustomerError
		incomplete *IncompleteIdentityError
		identities *TooManyIdentitiesError
		claims     *TooManyClaimsError
		provider   *InvalidServiceProviderIdentityError
		timeout    *LedgerTimeoutError
	)
	switch {
	case errors.As(err, &invalid):
		return "invalid_customer"
	case errors.As(err, &incomplete):
		return "incomplete_identity"
	case errors.As(err, &identities):
		return "too_many_identities"
	case errors.As(err, &claims):
		return "too_many_claims"
	case errors.As(err, &provider):
		return "invalid_service_provider"
	case errors.As(err, &timeout):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "infrastructure"
	}
}

func identityOf(rec *customer.Record) string {
	if rec == nil || rec.LedgerIdentity == nil {
		return "<unset>"
	}
	return rec.LedgerIdentity.Hex()
}

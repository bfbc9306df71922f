package customer

import (
	"errors"
	"fmt"
)

// InvalidCountryCodeError reports a country or jurisdiction value outside
// the ISO 3166-1 alpha-2 enumeration.
type InvalidCountryCodeError struct {
	Code string
}

func (e *InvalidCountryCodeError) Error() string {
	return fmt.Sprintf("invalid country code %q", e.Code)
}

// InvalidLedgerIdentityError reports a ledger identity that is not 0x
// followed by 64 hex digits.
type InvalidLedgerIdentityError struct {
	Value string
}

func (e *InvalidLedgerIdentityError) Error() string {
	return fmt.Sprintf("invalid ledger identity %q: expected 0x followed by 64 hex digits", e.Value)
}

// IsValidation reports whether err is a payload validation failure.
func IsValidation(err error) bool {
	var countryErr *InvalidCountryCodeError
	var identityErr *InvalidLedgerIdentityError
	return errors.As(err, &countryErr) || errors.As(err, &identityErr)
}

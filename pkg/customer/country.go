package customer

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// CountryCode is an ISO 3166-1 alpha-2 country code in the ledger's
// spelling: first letter upper case, second lower case ("Gb", "Us").
type CountryCode string

var countryValidator = validator.New()

// ParseCountryCode validates raw against the ISO 3166-1 alpha-2
// enumeration. Matching is case-insensitive.
func ParseCountryCode(raw string) (CountryCode, error) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if len(upper) != 2 || countryValidator.Var(upper, "iso3166_1_alpha2") != nil {
		return "", &InvalidCountryCodeError{Code: raw}
	}
	return CountryCode(upper[:1] + strings.ToLower(upper[1:])), nil
}

// ISO returns the upper-case ISO form of the code.
func (c CountryCode) ISO() string {
	return strings.ToUpper(string(c))
}

func (c CountryCode) String() string {
	return string(c)
}

// parseOptionalCountry treats an empty string as unset.
func parseOptionalCountry(raw string) (*CountryCode, error) {
	if raw == "" {
		return nil, nil
	}
	code, err := ParseCountryCode(raw)
	if err != nil {
		return nil, err
	}
	return &code, nil
}

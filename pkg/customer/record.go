// Package customer holds the KYC customer record and the strict payload
// parsing used to build and patch it.
package customer

import "github.com/ethereum/go-ethereum/common"

// Record is one customer's KYC data plus the verification decision.
type Record struct {
	Name           string
	Country        *CountryCode // country of residence
	Passport       string
	Valid          bool
	Jurisdiction   *CountryCode
	LedgerIdentity *common.Hash
}

// Payload is the wire form of a Record. A nil field is absent; JSON null
// decodes to absent as well.
type Payload struct {
	Name           *string `json:"name"`
	Country        *string `json:"country"`
	Passport       *string `json:"passport"`
	Valid          *bool   `json:"valid"`
	Jurisdiction   *string `json:"jurisdiction"`
	LedgerIdentity *string `json:"ledgerIdentity"`
}

// FromPayload builds a new record, replacing any previous state. Absent or
// empty optional fields are unset and Valid defaults to false. No record is
// returned when any field fails validation.
func FromPayload(p Payload) (*Record, error) {
	return (&Record{}).Patch(p)
}

// Patch returns a copy of r with the fields present in p applied. An empty
// string clears country, jurisdiction or ledger identity. r is not modified.
func (r *Record) Patch(p Payload) (*Record, error) {
	next := r.Clone()

	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Passport != nil {
		next.Passport = *p.Passport
	}
	if p.Valid != nil {
		next.Valid = *p.Valid
	}
	if p.Country != nil {
		country, err := parseOptionalCountry(*p.Country)
		if err != nil {
			return nil, err
		}
		next.Country = country
	}
	if p.Jurisdiction != nil {
		jurisdiction, err := parseOptionalCountry(*p.Jurisdiction)
		if err != nil {
			return nil, err
		}
		next.Jurisdiction = jurisdiction
	}
	if p.LedgerIdentity != nil {
		did, err := parseOptionalIdentity(*p.LedgerIdentity)
		if err != nil {
			return nil, err
		}
		next.LedgerIdentity = did
	}

	return next, nil
}

// Serialize returns the full wire form of r. Unset optional fields are nil
// and encode as JSON null.
func (r *Record) Serialize() Payload {
	name, passport, valid := r.Name, r.Passport, r.Valid
	p := Payload{
		Name:     &name,
		Passport: &passport,
		Valid:    &valid,
	}
	if r.Country != nil {
		s := r.Country.String()
		p.Country = &s
	}
	if r.Jurisdiction != nil {
		s := r.Jurisdiction.String()
		p.Jurisdiction = &s
	}
	if r.LedgerIdentity != nil {
		s := r.LedgerIdentity.Hex()
		p.LedgerIdentity = &s
	}
	return p
}

// Eligible reports whether the record should carry a jurisdiction claim.
func (r *Record) Eligible() bool {
	return r.Valid && r.LedgerIdentity != nil
}

// ClaimJurisdiction is the country attested on the ledger: the explicit
// jurisdiction, or the country of residence when none is set.
func (r *Record) ClaimJurisdiction() (CountryCode, bool) {
	if r.Jurisdiction != nil {
		return *r.Jurisdiction, true
	}
	if r.Country != nil {
		return *r.Country, true
	}
	return "", false
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	c := *r
	if r.Country != nil {
		v := *r.Country
		c.Country = &v
	}
	if r.Jurisdiction != nil {
		v := *r.Jurisdiction
		c.Jurisdiction = &v
	}
	if r.LedgerIdentity != nil {
		v := *r.LedgerIdentity
		c.LedgerIdentity = &v
	}
	return &c
}

// Package ledger defines the identity and claim operations the issuer needs
// from a claims ledger, plus an in-process implementation of them.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
)

// ScopeTypeIdentity restricts a claim to a single identity.
const ScopeTypeIdentity = "Identity"

var (
	// ErrNoSignerIdentity is returned when the signing account has no bound identity.
	ErrNoSignerIdentity = errors.New("signing account has no ledger identity")
	// ErrClaimNotFound is returned when revoking a claim the ledger does not hold.
	ErrClaimNotFound = errors.New("claim not found")
	// ErrInvalidTarget is returned when a claim is added for an unknown identity.
	ErrInvalidTarget = errors.New("target identity is not registered")
)

// Gateway is the ledger client surface used by claim reconciliation.
//
//go:generate mockery --name Gateway --output mocks --outpkg mocks --filename mock_gateway.go --with-expecter
type Gateway interface {
	ResolveIdentity(ctx context.Context, did common.Hash) (IdentityHandle, error)
	IdentityIsValid(ctx context.Context, id IdentityHandle) (bool, error)
	SignerIdentity(ctx context.Context) (IdentityHandle, error)
	FindJurisdictionClaims(ctx context.Context, target, issuer IdentityHandle) ([]Claim, error)
	// AddJurisdictionClaim submits the claim and blocks until it is final.
	AddJurisdictionClaim(ctx context.Context, target IdentityHandle, jurisdiction customer.CountryCode, scope Scope) (*AddResult, error)
	// RevokeClaim submits the revocation and blocks until it is final.
	RevokeClaim(ctx context.Context, claim Claim) error
}

// IdentityHandle references an identity on the ledger.
type IdentityHandle struct {
	DID common.Hash
}

// Scope limits where a claim applies.
type Scope struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// IdentityScope returns the scope that binds a claim to did.
func IdentityScope(did common.Hash) Scope {
	return Scope{Type: ScopeTypeIdentity, Value: did.Hex()}
}

// Claim is a jurisdiction attestation held by the ledger.
type Claim struct {
	ID           string
	Issuer       common.Hash
	Target       common.Hash
	Jurisdiction customer.CountryCode
	Scope        Scope
	IssuedAt     time.Time
	Expiry       *time.Time
}

// Expired reports whether the claim has lapsed at now.
func (c Claim) Expired(now time.Time) bool {
	return c.Expiry != nil && !c.Expiry.After(now)
}

// AddResult is returned once an added claim is final.
type AddResult struct {
	ClaimID         string
	BlockReferences []string
}

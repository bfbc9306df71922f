package ledger

import (
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
)

// Fixtures is the parsed seed state of a memory gateway.
type Fixtures struct {
	Signer     *common.Hash
	Identities map[common.Hash]bool
	Claims     []Claim
}

type fixturesFile struct {
	Signer     string            `yaml:"signer"`
	Identities []identityFixture `yaml:"identities"`
	Claims     []claimFixture    `yaml:"claims"`
}

type identityFixture struct {
	DID string `yaml:"did"`
	CDD bool   `yaml:"cdd"`
}

type claimFixture struct {
	ID           string     `yaml:"id"`
	Issuer       string     `yaml:"issuer"`
	Target       string     `yaml:"target"`
	Jurisdiction string     `yaml:"jurisdiction"`
	Scope        *Scope     `yaml:"scope"`
	IssuedAt     time.Time  `yaml:"issued_at"`
	Expiry       *time.Time `yaml:"expiry"`
}

// LoadFixtures reads and validates a YAML fixtures file.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	return ParseFixtures(data)
}

// ParseFixtures validates YAML fixtures. Claims default to identity scope
// on their target.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var raw fixturesFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	f := &Fixtures{Identities: make(map[common.Hash]bool, len(raw.Identities))}
	if raw.Signer != "" {
		did, err := customer.ParseLedgerIdentity(raw.Signer)
		if err != nil {
			return nil, fmt.Errorf("signer: %w", err)
		}
		f.Signer = &did
	}

	for i, id := range raw.Identities {
		did, err := customer.ParseLedgerIdentity(id.DID)
		if err != nil {
			return nil, fmt.Errorf("identities[%d]: %w", i, err)
		}
		f.Identities[did] = id.CDD
	}

	for i, c := range raw.Claims {
		claim, err := c.toClaim()
		if err != nil {
			return nil, fmt.Errorf("claims[%d]: %w", i, err)
		}
		f.Claims = append(f.Claims, claim)
	}

	return f, nil
}

func (c claimFixture) toClaim() (Claim, error) {
	issuer, err := customer.ParseLedgerIdentity(c.Issuer)
	if err != nil {
		return Claim{}, fmt.Errorf("issuer: %w", err)
	}
	target, err := customer.ParseLedgerIdentity(c.Target)
	if err != nil {
		return Claim{}, fmt.Errorf("target: %w", err)
	}
	jurisdiction, err := customer.ParseCountryCode(c.Jurisdiction)
	if err != nil {
		return Claim{}, err
	}

	claim := Claim{
		ID:           c.ID,
		Issuer:       issuer,
		Target:       target,
		Jurisdiction: jurisdiction,
		Scope:        IdentityScope(target),
		IssuedAt:     c.IssuedAt,
		Expiry:       c.Expiry,
	}
	if c.Scope != nil {
		claim.Scope = *c.Scope
	}
	return claim, nil
}

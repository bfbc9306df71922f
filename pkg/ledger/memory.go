package ledger

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
)

// MemoryGateway is an in-process claims ledger. Every add or revoke is
// sealed in its own block.
type MemoryGateway struct {
	mu         sync.Mutex
	signer     *common.Hash
	identities map[common.Hash]bool
	claims     []Claim
	height     uint64
	parent     common.Hash

	now           func() time.Time
	finalityDelay time.Duration
	logger        *zap.Logger
}

var _ Gateway = (*MemoryGateway)(nil)

// NewMemoryGateway creates a memory gateway seeded from the given options.
func NewMemoryGateway(opts ...Option) *MemoryGateway {
	s := applyOptions(opts)
	g := &MemoryGateway{
		identities:    make(map[common.Hash]bool),
		now:           s.now,
		finalityDelay: s.finalityDelay,
		logger:        s.logger,
	}

	if f := s.fixtures; f != nil {
		g.signer = f.Signer
		for did, cdd := range f.Identities {
			g.identities[did] = cdd
		}
		g.claims = append(g.claims, f.Claims...)
	}
	if s.signer != nil {
		g.signer = s.signer
	}
	if g.signer != nil {
		g.identities[*g.signer] = true
	}
	for i := range g.claims {
		if g.claims[i].ID == "" {
			g.claims[i].ID = uuid.NewString()
		}
	}
	return g
}

// RegisterIdentity adds or updates an identity and its CDD status.
func (g *MemoryGateway) RegisterIdentity(did common.Hash, cdd bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.identities[did] = cdd
}

// Claims returns a snapshot of every claim held, including expired ones.
func (g *MemoryGateway) Claims() []Claim {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Claim, len(g.claims))
	copy(out, g.claims)
	return out
}

// ResolveIdentity never fails; unknown identities are reported by IdentityIsValid.
func (g *MemoryGateway) ResolveIdentity(ctx context.Context, did common.Hash) (IdentityHandle, error) {
	if err := ctx.Err(); err != nil {
		return IdentityHandle{}, err
	}
	return IdentityHandle{DID: did}, nil
}

// IdentityIsValid reports whether the identity exists and has valid CDD.
func (g *MemoryGateway) IdentityIsValid(ctx context.Context, id IdentityHandle) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.identities[id.DID], nil
}

func (g *MemoryGateway) SignerIdentity(ctx context.Context) (IdentityHandle, error) {
	if err := ctx.Err(); err != nil {
		return IdentityHandle{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.signer == nil {
		return IdentityHandle{}, ErrNoSignerIdentity
	}
	return IdentityHandle{DID: *g.signer}, nil
}

// FindJurisdictionClaims returns unexpired claims by issuer scoped to target.
func (g *MemoryGateway) FindJurisdictionClaims(ctx context.Context, target, issuer IdentityHandle) ([]Claim, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	scope := IdentityScope(target.DID)
	now := g.now()
	var out []Claim
	for _, c := range g.claims {
		if c.Issuer != issuer.DID || c.Target != target.DID || c.Scope != scope {
			continue
		}
		if c.Expired(now) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (g *MemoryGateway) AddJurisdictionClaim(
	ctx context.Context,
	target IdentityHandle,
	jurisdiction customer.CountryCode,
	scope Scope,
) (*AddResult, error) {
	g.mu.Lock()
	if g.signer == nil {
		g.mu.Unlock()
		return nil, ErrNoSignerIdentity
	}
	if _, ok := g.identities[target.DID]; !ok {
		g.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, target.DID.Hex())
	}
	claim := Claim{
		ID:           uuid.NewString(),
		Issuer:       *g.signer,
		Target:       target.DID,
		Jurisdiction: jurisdiction,
		Scope:        scope,
		IssuedAt:     g.now().UTC(),
	}
	g.mu.Unlock()

	if err := g.awaitFinality(ctx); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.claims = append(g.claims, claim)
	block := g.seal(claim.ID)

	g.logger.Debug("jurisdiction claim added",
		zap.String("claim_id", claim.ID),
		zap.String("target", target.DID.Hex()),
		zap.String("jurisdiction", jurisdiction.String()),
		zap.Uint64("block", g.height),
	)
	return &AddResult{ClaimID: claim.ID, BlockReferences: []string{block.Hex()}}, nil
}

func (g *MemoryGateway) RevokeClaim(ctx context.Context, claim Claim) error {
	g.mu.Lock()
	idx := g.indexOf(claim.ID)
	g.mu.Unlock()
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrClaimNotFound, claim.ID)
	}

	if err := g.awaitFinality(ctx); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	// the claim may have been revoked while waiting
	idx = g.indexOf(claim.ID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrClaimNotFound, claim.ID)
	}
	g.claims = append(g.claims[:idx], g.claims[idx+1:]...)
	g.seal(claim.ID)

	g.logger.Debug("jurisdiction claim revoked",
		zap.String("claim_id", claim.ID),
		zap.String("target", claim.Target.Hex()),
		zap.Uint64("block", g.height),
	)
	return nil
}

func (g *MemoryGateway) indexOf(claimID string) int {
	for i, c := range g.claims {
		if c.ID == claimID {
			return i
		}
	}
	return -1
}

// seal appends a block over claimID and returns its hash. Caller holds mu.
func (g *MemoryGateway) seal(claimID string) common.Hash {
	g.height++
	var num [8]byte
	binary.BigEndian.PutUint64(num[:], g.height)
	g.parent = crypto.Keccak256Hash(g.parent.Bytes(), num[:], []byte(claimID))
	return g.parent
}

func (g *MemoryGateway) awaitFinality(ctx context.Context) error {
	if g.finalityDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.finalityDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

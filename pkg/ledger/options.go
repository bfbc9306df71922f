package ledger

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

type settings struct {
	logger        *zap.Logger
	now           func() time.Time
	finalityDelay time.Duration
	fixtures      *Fixtures
	signer        *common.Hash
}

// Option configures the memory gateway.
type Option func(*settings)

// WithLogger sets a custom logger for the gateway.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithClock overrides the time source used for issuance and expiry.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithFinalityDelay makes add and revoke wait d before they are final.
func WithFinalityDelay(d time.Duration) Option {
	return func(s *settings) { s.finalityDelay = d }
}

// WithFixtures seeds identities and claims.
func WithFixtures(f *Fixtures) Option {
	return func(s *settings) { s.fixtures = f }
}

// WithSigner sets the issuing identity, overriding any fixtures signer.
// The identity is registered with valid CDD.
func WithSigner(did common.Hash) Option {
	return func(s *settings) { s.signer = &did }
}

func applyOptions(opts []Option) settings {
	s := settings{logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

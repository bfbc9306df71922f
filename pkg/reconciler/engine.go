// Package reconciler keeps a customer's jurisdiction claim on the ledger in
// line with their KYC record.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/chainsafe/kyc-claim-issuer/internal/metrics"
	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
	"github.com/chainsafe/kyc-claim-issuer/pkg/ledger"
)

const (
	opReconcile = "reconcile"
	opRevoke    = "revoke"
)

// Engine decides and performs the claim transition for a record. At most
// one claim issued by the signer is kept per target identity.
type Engine struct {
	gateway         ledger.Gateway
	logger          *zap.Logger
	queryTimeout    time.Duration
	finalityTimeout time.Duration

	// one in-flight run per operation and identity
	flights singleflight.Group
}

// New creates a reconciliation engine on top of gw.
func New(gw ledger.Gateway, opts ...Option) (*Engine, error) {
	if gw == nil {
		return nil, fmt.Errorf("nil ledger gateway")
	}
	s := applyOptions(opts)
	if s.queryTimeout <= 0 || s.finalityTimeout <= 0 {
		return nil, fmt.Errorf("ledger timeouts must be positive")
	}
	return &Engine{
		gateway:         gw,
		logger:          s.logger,
		queryTimeout:    s.queryTimeout,
		finalityTimeout: s.finalityTimeout,
	}, nil
}

// Reconcile makes sure an eligible record has exactly one jurisdiction claim.
// An existing claim is never replaced. Records that are not verified or have
// no ledger identity are skipped without touching the ledger.
func (e *Engine) Reconcile(ctx context.Context, rec *customer.Record) (*Outcome, error) {
	if !rec.Eligible() {
		metrics.ReconciliationsTotal.WithLabelValues(opReconcile, string(KindSkipped)).Inc()
		return Skipped(ReasonNotEligible), nil
	}
	return e.run(ctx, opReconcile, rec, e.reconcile)
}

// Revoke removes the record's jurisdiction claim if there is one. Ambiguous
// ledger state is reported and nothing is revoked.
func (e *Engine) Revoke(ctx context.Context, rec *customer.Record) (*Outcome, error) {
	if rec.LedgerIdentity == nil {
		metrics.ReconciliationsTotal.WithLabelValues(opRevoke, string(KindSkipped)).Inc()
		return Skipped(ReasonNoLedgerIdentity), nil
	}
	return e.run(ctx, opRevoke, rec, e.revoke)
}

type runFunc func(ctx context.Context, rec *customer.Record) (*Outcome, error)

// run joins or starts the flight for op on the record's identity. The flight
// outlives a caller that gives up; the ledger timeouts still bound it.
func (e *Engine) run(ctx context.Context, op string, rec *customer.Record, fn runFunc) (*Outcome, error) {
	snapshot := rec.Clone()
	key := op + "/" + snapshot.LedgerIdentity.Hex()
	flightCtx := context.WithoutCancel(ctx)

	ch := e.flights.DoChan(key, func() (any, error) {
		return fn(flightCtx, snapshot)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			metrics.DeduplicatedCalls.WithLabelValues(op).Inc()
		}
		if res.Err != nil {
			metrics.ReconciliationErrors.WithLabelValues(op, errorType(res.Err)).Inc()
			return nil, res.Err
		}
		out := res.Val.(*Outcome)
		metrics.ReconciliationsTotal.WithLabelValues(op, string(out.Kind)).Inc()
		return out, nil
	}
}

func (e *Engine) reconcile(ctx context.Context, rec *customer.Record) (*Outcome, error) {
	target, err := e.resolveTarget(ctx, rec, true)
	if err != nil {
		return nil, err
	}
	issuer, err := e.signer(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := e.findClaims(ctx, rec, target, issuer)
	if err != nil {
		return nil, err
	}

	switch len(claims) {
	case 0:
		return e.addClaim(ctx, rec, target)
	case 1:
		if want, ok := rec.ClaimJurisdiction(); ok && claims[0].Jurisdiction != want {
			e.logger.Warn("Existing jurisdiction claim differs from record",
				zap.String("ledger_identity", target.DID.Hex()),
				zap.String("claim_id", claims[0].ID),
				zap.String("claim_jurisdiction", claims[0].Jurisdiction.String()),
				zap.String("record_jurisdiction", want.String()),
			)
		}
		e.logger.Debug("Jurisdiction claim already present",
			zap.String("ledger_identity", target.DID.Hex()),
			zap.String("claim_id", claims[0].ID),
		)
		return NoActionNeeded(), nil
	default:
		return nil, &TooManyClaimsError{Record: rec, Count: len(claims)}
	}
}

func (e *Engine) revoke(ctx context.Context, rec *customer.Record) (*Outcome, error) {
	target, err := e.resolveTarget(ctx, rec, false)
	if err != nil {
		return nil, err
	}
	issuer, err := e.signer(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := e.findClaims(ctx, rec, target, issuer)
	if err != nil {
		return nil, err
	}

	switch len(claims) {
	case 0:
		return NoActionNeeded(), nil
	case 1:
		claim := claims[0]
		err := e.call(ctx, "RevokeClaim", e.finalityTimeout, func(ctx context.Context) error {
			return e.gateway.RevokeClaim(ctx, claim)
		})
		recordWrite("RevokeClaim", err)
		if err != nil {
			return nil, wrapLedger("failed to revoke claim", err)
		}
		e.logger.Info("Jurisdiction claim revoked",
			zap.String("ledger_identity", target.DID.Hex()),
			zap.String("claim_id", claim.ID),
		)
		return Revoked(), nil
	default:
		return nil, &TooManyClaimsError{Record: rec, Count: len(claims)}
	}
}

func (e *Engine) resolveTarget(ctx context.Context, rec *customer.Record, requireValid bool) (ledger.IdentityHandle, error) {
	var target ledger.IdentityHandle
	err := e.query(ctx, "ResolveIdentity", func(ctx context.Context) error {
		var err error
		target, err = e.gateway.ResolveIdentity(ctx, *rec.LedgerIdentity)
		return err
	})
	if err != nil {
		return target, wrapLedger("failed to resolve ledger identity", err)
	}
	if !requireValid {
		return target, nil
	}

	var valid bool
	err = e.query(ctx, "IdentityIsValid", func(ctx context.Context) error {
		var err error
		valid, err = e.gateway.IdentityIsValid(ctx, target)
		return err
	})
	if err != nil {
		return target, wrapLedger("failed to check ledger identity", err)
	}
	if !valid {
		return target, &IncompleteIdentityError{Record: rec}
	}
	return target, nil
}

func (e *Engine) signer(ctx context.Context) (ledger.IdentityHandle, error) {
	var issuer ledger.IdentityHandle
	err := e.query(ctx, "SignerIdentity", func(ctx context.Context) error {
		var err error
		issuer, err = e.gateway.SignerIdentity(ctx)
		return err
	})
	if errors.Is(err, ledger.ErrNoSignerIdentity) {
		return issuer, &InvalidServiceProviderIdentityError{Err: err}
	}
	if err != nil {
		return issuer, wrapLedger("failed to resolve signer identity", err)
	}
	return issuer, nil
}

func (e *Engine) findClaims(
	ctx context.Context,
	rec *customer.Record,
	target, issuer ledger.IdentityHandle,
) ([]ledger.Claim, error) {
	var claims []ledger.Claim
	err := e.query(ctx, "FindJurisdictionClaims", func(ctx context.Context) error {
		var err error
		claims, err = e.gateway.FindJurisdictionClaims(ctx, target, issuer)
		return err
	})
	if err != nil {
		return nil, wrapLedger("failed to query jurisdiction claims", err)
	}

	targets := make(map[string]struct{}, 1)
	for _, c := range claims {
		targets[c.Target.Hex()] = struct{}{}
	}
	if len(targets) > 1 {
		return nil, &TooManyIdentitiesError{Record: rec, Count: len(targets)}
	}
	return claims, nil
}

func (e *Engine) addClaim(ctx context.Context, rec *customer.Record, target ledger.IdentityHandle) (*Outcome, error) {
	if !rec.Valid {
		return nil, &InvalidCustomerError{Record: rec, Reason: "not verified"}
	}
	jurisdiction, ok := rec.ClaimJurisdiction()
	if !ok {
		return nil, &InvalidCustomerError{Record: rec, Reason: "no jurisdiction"}
	}

	var res *ledger.AddResult
	err := e.call(ctx, "AddJurisdictionClaim", e.finalityTimeout, func(ctx context.Context) error {
		var err error
		res, err = e.gateway.AddJurisdictionClaim(ctx, target, jurisdiction, ledger.IdentityScope(target.DID))
		return err
	})
	recordWrite("AddJurisdictionClaim", err)
	if err != nil {
		return nil, wrapLedger("failed to add jurisdiction claim", err)
	}

	e.logger.Info("Jurisdiction claim added",
		zap.String("ledger_identity", target.DID.Hex()),
		zap.String("jurisdiction", jurisdiction.String()),
		zap.String("claim_id", res.ClaimID),
		zap.Strings("block_references", res.BlockReferences),
	)
	return Added(res.BlockReferences), nil
}

func (e *Engine) query(ctx context.Context, method string, fn func(context.Context) error) error {
	return e.call(ctx, method, e.queryTimeout, fn)
}

// call runs one gateway method under timeout. A deadline hit by the timeout
// itself, not by ctx, becomes a LedgerTimeoutError.
func (e *Engine) call(ctx context.Context, method string, timeout time.Duration, fn func(context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := fn(callCtx)
	metrics.LedgerCallDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	if err != nil && ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return &LedgerTimeoutError{Operation: method, Timeout: timeout}
	}
	return err
}

func wrapLedger(msg string, err error) error {
	var timeout *LedgerTimeoutError
	if errors.As(err, &timeout) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func recordWrite(method string, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	metrics.LedgerWritesTotal.WithLabelValues(method, status).Inc()
}

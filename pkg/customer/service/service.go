// Package service implements the customer KYC use cases: storing submitted
// records and reconciling their jurisdiction claim on the ledger.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-claim-issuer/pkg/app/errors"
	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
	"github.com/chainsafe/kyc-claim-issuer/pkg/customerstore"
	"github.com/chainsafe/kyc-claim-issuer/pkg/reconciler"
)

// Store is the narrow record persistence interface used by the service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Get(ctx context.Context, id string) (*customer.Record, error)
	Set(ctx context.Context, id string, rec *customer.Record) error
	Update(ctx context.Context, id string, fn customerstore.UpdateFunc) (*customer.Record, error)
}

// Reconciler drives the ledger claim for a record.
//
//go:generate mockery --name Reconciler --output mocks --outpkg mocks --filename mock_reconciler.go --with-expecter
type Reconciler interface {
	Reconcile(ctx context.Context, rec *customer.Record) (*reconciler.Outcome, error)
	Revoke(ctx context.Context, rec *customer.Record) (*reconciler.Outcome, error)
}

// Service defines the customer KYC business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// SubmitNewInfo replaces the record under id. The outcome is nil when
	// the record is not eligible for a claim.
	SubmitNewInfo(ctx context.Context, id string, p customer.Payload) (*reconciler.Outcome, error)
	// SubmitPatch merges p into the existing record under id.
	SubmitPatch(ctx context.Context, id string, p customer.Payload) (*reconciler.Outcome, error)
	GetInfo(ctx context.Context, id string) (*customer.Record, error)
	// RevokeClaim removes the ledger claim of the record under id.
	RevokeClaim(ctx context.Context, id string) (*reconciler.Outcome, error)
}

type customerService struct {
	store      Store
	reconciler Reconciler
	logger     *zap.Logger
}

// NewService creates a new customer service
func NewService(store Store, rec Reconciler, logger *zap.Logger) Service {
	return &customerService{
		store:      store,
		reconciler: rec,
		logger:     logger,
	}
}

func (s *customerService) SubmitNewInfo(ctx context.Context, id string, p customer.Payload) (*reconciler.Outcome, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	rec, err := customer.FromPayload(p)
	if err != nil {
		return nil, classify(err)
	}
	if err := s.store.Set(ctx, id, rec); err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to store customer %s: %w", id, err))
	}

	return s.reconcile(ctx, id, rec)
}

func (s *customerService) SubmitPatch(ctx context.Context, id string, p customer.Payload) (*reconciler.Outcome, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	rec, err := s.store.Update(ctx, id, func(current *customer.Record) (*customer.Record, error) {
		return current.Patch(p)
	})
	if err != nil {
		return nil, classify(err)
	}

	return s.reconcile(ctx, id, rec)
}

func (s *customerService) GetInfo(ctx context.Context, id string) (*customer.Record, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return rec, nil
}

func (s *customerService) RevokeClaim(ctx context.Context, id string) (*reconciler.Outcome, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, classify(err)
	}

	out, err := s.reconciler.Revoke(ctx, rec)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// reconcile runs only for eligible records; the stored record is kept even
// when reconciliation fails.
func (s *customerService) reconcile(ctx context.Context, id string, rec *customer.Record) (*reconciler.Outcome, error) {
	if !rec.Eligible() {
		s.logger.Debug("Customer not eligible for a jurisdiction claim", zap.String("customer_id", id))
		return nil, nil
	}

	out, err := s.reconciler.Reconcile(ctx, rec)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.BadRequestError(nil, "customer id required")
	}
	return nil
}

// classify maps domain errors onto service error categories.
func classify(err error) error {
	switch {
	case customerstore.IsUnknownCustomer(err):
		return apperrors.ResourceNotFoundError(err, err.Error())
	case customer.IsValidation(err):
		return apperrors.BadRequestError(err, err.Error())
	case reconciler.IsBusinessRule(err):
		return apperrors.UnprocessableError(err, err.Error())
	case reconciler.IsTimeout(err):
		return apperrors.TimeoutError(err, "ledger did not respond in time")
	default:
		return apperrors.GeneralError(err)
	}
}

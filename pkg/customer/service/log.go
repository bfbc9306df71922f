package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apperrors "github.com/chainsafe/kyc-claim-issuer/pkg/app/errors"
	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
	"github.com/chainsafe/kyc-claim-issuer/pkg/reconciler"
)

const serviceName = "CustomerService"

const passportVisibleChars = 2

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the customer Service.
// Passport numbers are redacted.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// SubmitNewInfo wraps the service method with logging
func (ls *logService) SubmitNewInfo(ctx context.Context, id string, p customer.Payload) (out *reconciler.Outcome, err error) {
	defer ls.trace("SubmitNewInfo", id, payloadFields(p))(&out, &err)
	return ls.svc.SubmitNewInfo(ctx, id, p)
}

// SubmitPatch wraps the service method with logging
func (ls *logService) SubmitPatch(ctx context.Context, id string, p customer.Payload) (out *reconciler.Outcome, err error) {
	defer ls.trace("SubmitPatch", id, payloadFields(p))(&out, &err)
	return ls.svc.SubmitPatch(ctx, id, p)
}

// RevokeClaim wraps the service method with logging
func (ls *logService) RevokeClaim(ctx context.Context, id string) (out *reconciler.Outcome, err error) {
	defer ls.trace("RevokeClaim", id, nil)(&out, &err)
	return ls.svc.RevokeClaim(ctx, id)
}

// GetInfo wraps the service method with logging
func (ls *logService) GetInfo(ctx context.Context, id string) (rec *customer.Record, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "GetInfo"),
			zap.String("customer_id", id),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logFailure("GetInfo", err, fields)
			return
		}
		ls.logger.Debug("GetInfo completed", append(fields,
			zap.Bool("valid", rec.Valid),
			zap.Bool("has_ledger_identity", rec.LedgerIdentity != nil),
		)...)
	}()

	return ls.svc.GetInfo(ctx, id)
}

// trace logs method entry and returns the exit logger for the deferred call.
func (ls *logService) trace(method, id string, extra []zap.Field) func(**reconciler.Outcome, *error) {
	start := time.Now()
	base := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("customer_id", id),
	}
	ls.logger.Info(method+" started", append(base, extra...)...)

	return func(out **reconciler.Outcome, err *error) {
		fields := append(base, zap.Duration("duration", time.Since(start)))
		if *err != nil {
			ls.logFailure(method, *err, fields)
			return
		}
		ls.logger.Info(method+" completed", append(fields, outcomeFields(*out)...)...)
	}
}

// logFailure logs client errors at warn and internal errors at error level.
func (ls *logService) logFailure(method string, err error, fields []zap.Field) {
	level := zapcore.WarnLevel
	if apperrors.IsInternalError(err) {
		level = zapcore.ErrorLevel
	}
	ls.logger.Log(level, method+" failed", append(fields, zap.Error(err))...)
}

func payloadFields(p customer.Payload) []zap.Field {
	fields := []zap.Field{zap.String("passport", redactPassport(p.Passport))}
	if p.Country != nil {
		fields = append(fields, zap.String("country", *p.Country))
	}
	if p.Jurisdiction != nil {
		fields = append(fields, zap.String("jurisdiction", *p.Jurisdiction))
	}
	if p.Valid != nil {
		fields = append(fields, zap.Bool("valid", *p.Valid))
	}
	if p.LedgerIdentity != nil {
		fields = append(fields, zap.String("ledger_identity", *p.LedgerIdentity))
	}
	return fields
}

func outcomeFields(out *reconciler.Outcome) []zap.Field {
	if out == nil {
		return []zap.Field{zap.String("outcome", "not_eligible")}
	}
	fields := []zap.Field{zap.String("outcome", string(out.Kind))}
	if len(out.BlockReferences) > 0 {
		fields = append(fields, zap.Strings("block_references", out.BlockReferences))
	}
	if out.Reason != "" {
		fields = append(fields, zap.String("reason", out.Reason))
	}
	return fields
}

// redactPassport keeps only the last characters and the length.
func redactPassport(passport *string) string {
	if passport == nil {
		return "<absent>"
	}
	n := len(*passport)
	if n == 0 {
		return "<empty>"
	}
	if n <= passportVisibleChars*2 {
		return fmt.Sprintf("<%d chars>", n)
	}
	return fmt.Sprintf("***%s (%d chars)", (*passport)[n-passportVisibleChars:], n)
}

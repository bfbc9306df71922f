// Package api implements app.Runner for the claim issuer API server.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/kyc-claim-issuer/pkg/app/http"
	"github.com/chainsafe/kyc-claim-issuer/pkg/config"
	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
	customerservice "github.com/chainsafe/kyc-claim-issuer/pkg/customer/service"
	"github.com/chainsafe/kyc-claim-issuer/pkg/customerstore"
	"github.com/chainsafe/kyc-claim-issuer/pkg/ledger"
	"github.com/chainsafe/kyc-claim-issuer/pkg/pgutil"
	"github.com/chainsafe/kyc-claim-issuer/pkg/reconciler"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run wires the store, ledger gateway and reconciler, then serves HTTP
// until an OS shutdown signal is received or the server fails.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting KYC claim issuer",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Driver),
		zap.String("ledger", cfg.Ledger.Driver),
	)

	store, closeStore, err := s.openStore(ctx, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore.Close() }()

	gateway, err := s.openLedger(logger)
	if err != nil {
		return err
	}

	engine, err := reconciler.New(gateway,
		reconciler.WithLogger(logger),
		reconciler.WithQueryTimeout(cfg.Reconciliation.QueryTimeout),
		reconciler.WithFinalityTimeout(cfg.Reconciliation.FinalityTimeout),
	)
	if err != nil {
		return fmt.Errorf("create reconciler: %w", err)
	}

	svc := customerservice.NewLog(customerservice.NewService(store, engine, logger), logger)

	return apphttp.ServeAndWait(ctx, s.setupRouter(svc, logger), logger, &cfg.Server)
}

func (s *Server) openStore(ctx context.Context, logger *zap.Logger) (customerservice.Store, io.Closer, error) {
	switch s.cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := pgutil.ConnectDB(ctx, &s.cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect db: %w", err)
		}
		logger.Info("Connected to database",
			zap.String("host", s.cfg.Database.Host),
			zap.String("database", s.cfg.Database.Database),
		)
		return customerstore.NewPGStore(db), db, nil
	case config.StoreDriverFile:
		logger.Info("Using file store", zap.String("path", s.cfg.Store.Path))
		return customerstore.NewFSStore(s.cfg.Store.Path), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", s.cfg.Store.Driver)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func (s *Server) openLedger(logger *zap.Logger) (ledger.Gateway, error) {
	cfg := s.cfg.Ledger
	opts := []ledger.Option{ledger.WithLogger(logger)}

	if cfg.FixturesFile != "" {
		fixtures, err := ledger.LoadFixtures(cfg.FixturesFile)
		if err != nil {
			return nil, fmt.Errorf("load ledger fixtures: %w", err)
		}
		opts = append(opts, ledger.WithFixtures(fixtures))
		logger.Info("Loaded ledger fixtures",
			zap.String("path", cfg.FixturesFile),
			zap.Int("identities", len(fixtures.Identities)),
			zap.Int("claims", len(fixtures.Claims)),
		)
	}
	if cfg.SignerDID != "" {
		signer, err := customer.ParseLedgerIdentity(cfg.SignerDID)
		if err != nil {
			return nil, fmt.Errorf("ledger.signer_did: %w", err)
		}
		opts = append(opts, ledger.WithSigner(signer))
	}

	return ledger.NewMemoryGateway(opts...), nil
}

func (s *Server) setupRouter(svc customerservice.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	customerservice.RegisterRoutes(r, svc, logger)

	return r
}

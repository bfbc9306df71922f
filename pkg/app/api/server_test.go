package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/kyc-claim-issuer/pkg/config"
	"github.com/chainsafe/kyc-claim-issuer/pkg/customer/service/mocks"
	"github.com/chainsafe/kyc-claim-issuer/pkg/ledger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{RequestTimeout: time.Second},
		Store: config.StoreConfig{
			Driver: config.StoreDriverFile,
			Path:   filepath.Join(t.TempDir(), "customers.json"),
		},
		Ledger: config.LedgerConfig{Driver: config.LedgerDriverMemory},
	}
}

func TestServer_Run_NilConfig(t *testing.T) {
	if err := NewServer(nil).Run(); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestServer_Router_HealthAndMetrics(t *testing.T) {
	s := NewServer(testConfig(t))
	r := s.setupRouter(mocks.NewService(t), zap.NewNop())

	for path, want := range map[string]string{"/health": "OK", "/metrics": "go_goroutines"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("%s: expected body to contain %q", path, want)
		}
	}
}

func TestServer_OpenStore_File(t *testing.T) {
	s := NewServer(testConfig(t))

	store, closer, err := s.openStore(context.Background(), zap.NewNop())
	if err != nil {
		t.Fatalf("openStore() failed: %v", err)
	}
	if store == nil {
		t.Fatal("expected store")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
}

func TestServer_OpenLedger_SignerOverridesFixtures(t *testing.T) {
	fixtures := filepath.Join(t.TempDir(), "ledger.yaml")
	body := `signer: "0x` + strings.Repeat("11", 32) + `"
identities:
  - did: "0x` + strings.Repeat("ab", 32) + `"
    cdd: true
`
	if err := os.WriteFile(fixtures, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg := testConfig(t)
	cfg.Ledger.FixturesFile = fixtures
	cfg.Ledger.SignerDID = "0x" + strings.Repeat("22", 32)

	gw, err := NewServer(cfg).openLedger(zap.NewNop())
	if err != nil {
		t.Fatalf("openLedger() failed: %v", err)
	}

	ctx := context.Background()
	signer, err := gw.SignerIdentity(ctx)
	if err != nil {
		t.Fatalf("SignerIdentity() failed: %v", err)
	}
	if signer.DID != common.HexToHash(cfg.Ledger.SignerDID) {
		t.Fatalf("expected signer override, got %s", signer.DID.Hex())
	}
	ok, err := gw.IdentityIsValid(ctx, ledger.IdentityHandle{DID: common.HexToHash("0x" + strings.Repeat("ab", 32))})
	if err != nil || !ok {
		t.Fatalf("expected fixture identity to be valid, got %v, %v", ok, err)
	}
}

func TestServer_OpenLedger_BadFixtures(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ledger.FixturesFile = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := NewServer(cfg).openLedger(zap.NewNop()); err == nil {
		t.Fatal("expected error for missing fixtures file")
	}
}

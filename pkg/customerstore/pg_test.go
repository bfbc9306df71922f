package customerstore

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/uptrace/bun"

	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
	"github.com/chainsafe/kyc-claim-issuer/pkg/pgutil"
	mghelper "github.com/chainsafe/kyc-claim-issuer/pkg/pgutil/migrations"
)

func setupPGStore(t *testing.T) (*pgStore, *bun.DB) {
	t.Helper()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(context.Background(), db, &CustomerDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	return NewPGStore(db), db
}

func TestPGStore_GetUnknown(t *testing.T) {
	s, _ := setupPGStore(t)

	_, err := s.Get(context.Background(), "3")
	if !IsUnknownCustomer(err) {
		t.Fatalf("expected UnknownCustomerError, got %v", err)
	}
}

func TestPGStore_SetGetReplace(t *testing.T) {
	ctx := context.Background()
	s, db := setupPGStore(t)

	first := mustRecord(t, customer.Payload{
		Name:     strPtr("Alice"),
		Country:  strPtr("gb"),
		Passport: strPtr("P123"),
		Valid:    boolPtr(false),
	})
	if err := s.Set(ctx, "1", first); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, err := s.Get(ctx, "1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Name != "Alice" || got.Valid || got.Country == nil || *got.Country != "Gb" {
		t.Fatalf("unexpected record: %+v", got)
	}

	second := mustRecord(t, customer.Payload{
		Name:           strPtr("Alice B"),
		Valid:          boolPtr(true),
		LedgerIdentity: strPtr("0x" + strings.Repeat("cd", 32)),
	})
	if err := s.Set(ctx, "1", second); err != nil {
		t.Fatalf("Set() replace failed: %v", err)
	}

	got, err = s.Get(ctx, "1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Name != "Alice B" || !got.Valid || got.Country != nil || got.LedgerIdentity == nil {
		t.Fatalf("record was not replaced: %+v", got)
	}
	pgutil.AssertRowCount(t, db, "customers", 1)
}

func TestPGStore_UpdateUnknown(t *testing.T) {
	s, _ := setupPGStore(t)

	_, err := s.Update(context.Background(), "9", func(cur *customer.Record) (*customer.Record, error) {
		t.Fatal("update func must not run for unknown customers")
		return cur, nil
	})
	if !IsUnknownCustomer(err) {
		t.Fatalf("expected UnknownCustomerError, got %v", err)
	}
}

func TestPGStore_UpdateErrorRollsBack(t *testing.T) {
	ctx := context.Background()
	s, _ := setupPGStore(t)

	rec := mustRecord(t, customer.Payload{Name: strPtr("Bob")})
	if err := s.Set(ctx, "2", rec); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	boom := errors.New("boom")
	_, err := s.Update(ctx, "2", func(cur *customer.Record) (*customer.Record, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	got, err := s.Get(ctx, "2")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Name != "Bob" {
		t.Fatalf("record changed after failed update: %+v", got)
	}
}

func TestPGStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	s, _ := setupPGStore(t)

	if err := s.Set(ctx, "c", mustRecord(t, customer.Payload{Name: strPtr("")})); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, "c", func(cur *customer.Record) (*customer.Record, error) {
				next := cur.Clone()
				next.Name += "x"
				return next, nil
			})
			if err != nil {
				t.Errorf("Update() failed: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, "c")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if len(got.Name) != writers {
		t.Fatalf("expected %d appended characters, got %q", writers, got.Name)
	}
}

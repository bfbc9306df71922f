package customerstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newFSStore(t *testing.T) (*FSStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "customers.json")
	return NewFSStore(path), path
}

func mustRecord(t *testing.T, p customer.Payload) *customer.Record {
	t.Helper()
	rec, err := customer.FromPayload(p)
	if err != nil {
		t.Fatalf("FromPayload() failed: %v", err)
	}
	return rec
}

func TestFSStore_GetUnknownOnEmptyStore(t *testing.T) {
	s, path := newFSStore(t)

	_, err := s.Get(context.Background(), "3")
	var unknown *UnknownCustomerError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCustomerError, got %v", err)
	}
	if unknown.ID != "3" {
		t.Fatalf("expected id 3, got %q", unknown.ID)
	}
	if !IsUnknownCustomer(err) {
		t.Fatal("IsUnknownCustomer() = false")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected document to be created: %v", err)
	}
	if strings.TrimSpace(string(data)) != "{}" {
		t.Fatalf("expected empty document, got %q", data)
	}
}

func TestFSStore_SetThenGet(t *testing.T) {
	ctx := context.Background()
	s, path := newFSStore(t)

	rec := mustRecord(t, customer.Payload{
		Name:     strPtr("John Doe"),
		Country:  strPtr("Gb"),
		Passport: strPtr("12345"),
	})
	if err := s.Set(ctx, "4", rec); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, err := s.Get(ctx, "4")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Name != "John Doe" || got.Passport != "12345" || got.Valid {
		t.Fatalf("unexpected record: %+v", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	var doc map[string]map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("document is not JSON: %v", err)
	}
	if v, ok := doc["4"]["valid"]; !ok || v != false {
		t.Fatalf("expected valid:false persisted, got %v", doc["4"])
	}
}

func TestFSStore_SetReplaces(t *testing.T) {
	ctx := context.Background()
	s, _ := newFSStore(t)

	first := mustRecord(t, customer.Payload{Name: strPtr("A"), Country: strPtr("Fr")})
	second := mustRecord(t, customer.Payload{Name: strPtr("B")})
	if err := s.Set(ctx, "1", first); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := s.Set(ctx, "1", second); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, err := s.Get(ctx, "1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Name != "B" || got.Country != nil {
		t.Fatalf("expected full replace, got %+v", got)
	}
}

func TestFSStore_UpdateUnknown(t *testing.T) {
	s, _ := newFSStore(t)

	_, err := s.Update(context.Background(), "missing", func(r *customer.Record) (*customer.Record, error) {
		t.Fatal("update func must not run for unknown ids")
		return r, nil
	})
	if !IsUnknownCustomer(err) {
		t.Fatalf("expected UnknownCustomerError, got %v", err)
	}
}

func TestFSStore_UpdateErrorAbortsWrite(t *testing.T) {
	ctx := context.Background()
	s, _ := newFSStore(t)

	if err := s.Set(ctx, "1", mustRecord(t, customer.Payload{Name: strPtr("A")})); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	_, err := s.Update(ctx, "1", func(r *customer.Record) (*customer.Record, error) {
		return r.Patch(customer.Payload{Name: strPtr("B"), Country: strPtr("ZZ")})
	})
	if !customer.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, err := s.Get(ctx, "1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Name != "A" {
		t.Fatalf("expected record untouched, got %+v", got)
	}
}

func TestFSStore_ConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	ctx := context.Background()
	s, _ := newFSStore(t)

	if err := s.Set(ctx, "1", mustRecord(t, customer.Payload{Name: strPtr("")})); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	const writers = 20
	var wg sync.WaitGroup
	errCh := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, "1", func(r *customer.Record) (*customer.Record, error) {
				return r.Patch(customer.Payload{Name: strPtr(r.Name + "x")})
			})
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
	}

	got, err := s.Get(ctx, "1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if len(got.Name) != writers {
		t.Fatalf("expected %d appended writes, got %q", writers, got.Name)
	}
}

func TestFSStore_ValidFlagPersists(t *testing.T) {
	ctx := context.Background()
	s, _ := newFSStore(t)

	rec := mustRecord(t, customer.Payload{
		Valid:          boolPtr(true),
		LedgerIdentity: strPtr("0x" + strings.Repeat("ab", 32)),
	})
	if err := s.Set(ctx, "7", rec); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, err := s.Get(ctx, "7")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !got.Eligible() {
		t.Fatalf("expected eligible record after reload, got %+v", got)
	}
}

func TestFSStore_CorruptDocument(t *testing.T) {
	s, path := newFSStore(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err := s.Get(context.Background(), "1")
	if err == nil || !strings.Contains(err.Error(), "failed to decode customer store") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

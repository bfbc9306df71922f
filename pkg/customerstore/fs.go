package customerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
)

const fileMode = 0o600

// document is the on-disk container: customer id -> serialized record.
type document map[string]customer.Payload

// FSStore keeps every record in one JSON document that is read in full and
// rewritten in full on each mutation.
type FSStore struct {
	path string
	mu   sync.Mutex
}

// NewFSStore creates a store backed by the JSON document at path. The
// document is created empty on first use.
func NewFSStore(path string) *FSStore {
	return &FSStore{path: path}
}

func (s *FSStore) Get(ctx context.Context, id string) (*customer.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return lookup(doc, id)
}

func (s *FSStore) Set(ctx context.Context, id string, rec *customer.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc[id] = rec.Serialize()
	return s.write(doc)
}

func (s *FSStore) Update(ctx context.Context, id string, fn UpdateFunc) (*customer.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	current, err := lookup(doc, id)
	if err != nil {
		return nil, err
	}
	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	doc[id] = next.Serialize()
	if err := s.write(doc); err != nil {
		return nil, err
	}
	return next, nil
}

func lookup(doc document, id string) (*customer.Record, error) {
	payload, ok := doc[id]
	if !ok {
		return nil, &UnknownCustomerError{ID: id}
	}
	rec, err := customer.FromPayload(payload)
	if err != nil {
		return nil, fmt.Errorf("corrupt record %q: %w", id, err)
	}
	return rec, nil
}

// load reads the document, creating it empty when missing. Caller holds mu.
func (s *FSStore) load() (document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := document{}
		if err := s.write(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read customer store: %w", err)
	}

	doc := document{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode customer store: %w", err)
	}
	return doc, nil
}

// write replaces the document through a temp file and rename so readers
// never observe a partial write. Caller holds mu.
func (s *FSStore) write(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode customer store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write customer store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync customer store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close customer store: %w", err)
	}
	if err := os.Chmod(tmpName, fileMode); err != nil {
		return fmt.Errorf("failed to chmod customer store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace customer store: %w", err)
	}
	return nil
}

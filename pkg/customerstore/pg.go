package customerstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
)

type pgStore struct {
	db *bun.DB
}

// NewPGStore creates a new postgres implementation of the customer store.
// Each record is one row; row locks serialize concurrent writers.
func NewPGStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) Get(ctx context.Context, id string) (*customer.Record, error) {
	dao := new(CustomerDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &UnknownCustomerError{ID: id}
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return decodeRow(dao)
}

func (s *pgStore) Set(ctx context.Context, id string, rec *customer.Record) error {
	_, err := s.db.NewInsert().
		Model(toCustomerDao(id, rec)).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("country = EXCLUDED.country").
		Set("passport = EXCLUDED.passport").
		Set("valid = EXCLUDED.valid").
		Set("jurisdiction = EXCLUDED.jurisdiction").
		Set("ledger_identity = EXCLUDED.ledger_identity").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set customer: %w", err)
	}
	return nil
}

func (s *pgStore) Update(ctx context.Context, id string, fn UpdateFunc) (*customer.Record, error) {
	var next *customer.Record
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		dao := new(CustomerDao)
		err := tx.NewSelect().
			Model(dao).
			Where("id = ?", id).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &UnknownCustomerError{ID: id}
			}
			return fmt.Errorf("failed to lock customer: %w", err)
		}

		current, err := decodeRow(dao)
		if err != nil {
			return err
		}
		next, err = fn(current)
		if err != nil {
			return err
		}

		_, err = tx.NewUpdate().
			Model(toCustomerDao(id, next)).
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

func decodeRow(dao *CustomerDao) (*customer.Record, error) {
	rec, err := toRecord(dao)
	if err != nil {
		return nil, fmt.Errorf("corrupt record %q: %w", dao.ID, err)
	}
	return rec, nil
}

package customerstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/kyc-claim-issuer/pkg/customer"
)

// CustomerDao is a data access object that maps directly to the 'customers' table in PostgreSQL.
type CustomerDao struct {
	bun.BaseModel  `bun:"table:customers,alias:c"`
	ID             string    `bun:"id,pk,type:varchar(255)"`
	Name           string    `bun:"name,notnull,type:text"`
	Country        *string   `bun:"country,type:varchar(2)"`
	Passport       string    `bun:"passport,notnull,type:varchar(64)"`
	Valid          bool      `bun:"valid,notnull"`
	Jurisdiction   *string   `bun:"jurisdiction,type:varchar(2)"`
	LedgerIdentity *string   `bun:"ledger_identity,type:varchar(66)"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// toCustomerDao converts a customer.Record to CustomerDao.
func toCustomerDao(id string, rec *customer.Record) *CustomerDao {
	p := rec.Serialize()
	return &CustomerDao{
		ID:             id,
		Name:           *p.Name,
		Country:        p.Country,
		Passport:       *p.Passport,
		Valid:          *p.Valid,
		Jurisdiction:   p.Jurisdiction,
		LedgerIdentity: p.LedgerIdentity,
		UpdatedAt:      time.Now().UTC(),
	}
}

// toRecord converts a CustomerDao back to a validated customer.Record.
func toRecord(dao *CustomerDao) (*customer.Record, error) {
	return customer.FromPayload(customer.Payload{
		Name:           &dao.Name,
		Country:        dao.Country,
		Passport:       &dao.Passport,
		Valid:          &dao.Valid,
		Jurisdiction:   dao.Jurisdiction,
		LedgerIdentity: dao.LedgerIdentity,
	})
}

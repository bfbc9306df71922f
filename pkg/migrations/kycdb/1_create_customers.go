package kycdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/kyc-claim-issuer/pkg/customerstore"
	mghelper "github.com/chainsafe/kyc-claim-issuer/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating customers table...")
		if err := mghelper.CreateSchema(ctx, db, &customerstore.CustomerDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &customerstore.CustomerDao{}, "ledger_identity")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping customers table...")
		return mghelper.DropTables(ctx, db, &customerstore.CustomerDao{})
	})
}

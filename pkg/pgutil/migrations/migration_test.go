package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/kyc-claim-issuer/pkg/config"
	"github.com/chainsafe/kyc-claim-issuer/pkg/pgutil"
)

type sampleDao struct {
	bun.BaseModel `bun:"table:sample_table"`
	ID            int64  `bun:",pk,autoincrement"`
	Code          string `bun:",notnull,type:varchar(16)"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg)
	if err == nil {
		_ = db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

func TestRunMigrations_RejectsEmptyAndUnknown(t *testing.T) {
	var migrator *migrate.Migrator

	if err := RunMigrations(context.Background(), migrator); err == nil {
		t.Fatal("expected error for missing command")
	}
	if err := RunMigrations(context.Background(), migrator, "sideways"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestCreateSchemaAndDropTables(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &sampleDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "sample_table")

	if err := CreateSchema(ctx, db, &sampleDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &sampleDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "sample_table")

	if err := DropTables(ctx, db, &sampleDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestTruncateTables(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &sampleDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if _, err := db.NewInsert().Model(&sampleDao{Code: "a"}).Exec(ctx); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "sample_table", 1)

	if err := TruncateTables(ctx, db, &sampleDao{}); err != nil {
		t.Fatalf("TruncateTables() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "sample_table", 0)
	pgutil.AssertTableExists(t, db, "sample_table")
}

func TestModelIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &sampleDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelIndexes(ctx, db, &sampleDao{}, "code"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_sample_table_code")

	if err := DropModelIndexes(ctx, db, &sampleDao{}, "code"); err != nil {
		t.Fatalf("DropModelIndexes() failed: %v", err)
	}

	var exists bool
	query := `SELECT EXISTS (SELECT FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)`
	if err := db.NewRaw(query, "idx_sample_table_code").Scan(ctx, &exists); err != nil {
		t.Fatalf("failed to check index: %v", err)
	}
	if exists {
		t.Error("idx_sample_table_code should be dropped")
	}
}

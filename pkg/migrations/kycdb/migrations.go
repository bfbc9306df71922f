// Package kycdb holds all the migrations for the customer database
package kycdb

import "github.com/uptrace/bun/migrate"

// Migrations is the registry of customer database migrations.
var Migrations = migrate.NewMigrations()

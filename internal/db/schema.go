package db

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
	`CREATE TABLE IF NOT EXISTS scans (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		domain TEXT NOT NULL,
		kind TEXT NOT NULL,
		result JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scans_domain_kind ON scans (domain, kind, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS domain_history (
		domain TEXT PRIMARY KEY,
		used_variant_ids TEXT[] NOT NULL DEFAULT '{}',
		used_personas TEXT[] NOT NULL DEFAULT '{}',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the scan and outreach-history tables if they do not
// exist. Safe to run on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// Package db provides PostgreSQL storage for scan results and per-domain
// outreach history.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// SaveScan stores one scan result as JSON and returns the record ID.
// kind distinguishes the HubSpot scan from the multi-technology scan.
func (db *DB) SaveScan(ctx context.Context, domain, kind string, result any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal scan result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO scans (domain, kind, result)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		domain, kind, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save scan: %w", err)
	}
	return id, nil
}

// GetLatestScan loads the most recent scan result for a domain into dest.
// Returns false without error when the domain has never been scanned.
func (db *DB) GetLatestScan(ctx context.Context, domain, kind string, dest any) (bool, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT result FROM scans
		 WHERE domain = $1 AND kind = $2
		 ORDER BY created_at DESC
		 LIMIT 1`,
		domain, kind,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load scan for %s: %w", domain, err)
	}

	if err := json.Unmarshal(content, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal scan for %s: %w", domain, err)
	}
	return true, nil
}

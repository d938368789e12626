package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/closespark/stackscanner/internal/outreach"
)

// GetDomainHistory loads the outreach history for a domain. A domain that
// was never contacted gets an empty history, not an error.
func (db *DB) GetDomainHistory(ctx context.Context, domain string) (*outreach.DomainHistory, error) {
	history := &outreach.DomainHistory{
		UsedVariantIDs: []string{},
		UsedPersonas:   []string{},
	}

	err := db.pool.QueryRow(ctx,
		`SELECT used_variant_ids, used_personas
		 FROM domain_history
		 WHERE domain = $1`,
		domain,
	).Scan(&history.UsedVariantIDs, &history.UsedPersonas)
	if errors.Is(err, pgx.ErrNoRows) {
		return history, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load history for %s: %w", domain, err)
	}
	return history, nil
}

// RecordOutreach appends a sent email's variant and persona to the domain's
// history so later sends rotate away from them.
func (db *DB) RecordOutreach(ctx context.Context, domain, variantID, persona string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO domain_history (domain, used_variant_ids, used_personas)
		 VALUES ($1, ARRAY[$2], ARRAY[$3])
		 ON CONFLICT (domain)
		 DO UPDATE SET
		   used_variant_ids = array_append(domain_history.used_variant_ids, $2),
		   used_personas = array_append(domain_history.used_personas, $3),
		   updated_at = NOW()`,
		domain, variantID, persona,
	)
	if err != nil {
		return fmt.Errorf("failed to record outreach for %s: %w", domain, err)
	}
	return nil
}

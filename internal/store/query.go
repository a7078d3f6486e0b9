// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pdiddy/paysplit/pkg/types"
)

// ListIndividuals returns every individual in insertion order.
func (s *Store) ListIndividuals(ctx context.Context) ([]types.Individual, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, address, phone_number, email FROM individuals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying individuals: %w", err)
	}
	defer rows.Close()

	var out []types.Individual
	for rows.Next() {
		var (
			ind                   types.Individual
			name                  sql.NullString
			address, phone, email sql.NullString
		)
		if err := rows.Scan(&ind.ID, &name, &address, &phone, &email); err != nil {
			return nil, fmt.Errorf("scanning individual: %w", err)
		}
		ind.Name = name.String
		ind.Address = address.String
		ind.Phone = phone.String
		ind.Email = email.String
		out = append(out, ind)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating individuals: %w", err)
	}
	return out, nil
}

// IndividualNames returns all individual names sorted by name.
func (s *Store) IndividualNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM individuals WHERE name IS NOT NULL ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying individual names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning individual name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating individual names: %w", err)
	}
	return names, nil
}

// ListPayRecords returns the pay statements of one individual in insertion
// order. An unknown id yields an empty slice.
func (s *Store) ListPayRecords(ctx context.Context, individualID int64) ([]types.PayRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, individual_id, date, filename, extraction_date
		 FROM pay_statements WHERE individual_id = ? ORDER BY id`, individualID)
	if err != nil {
		return nil, fmt.Errorf("querying pay statements: %w", err)
	}
	defer rows.Close()

	var out []types.PayRecord
	for rows.Next() {
		var (
			rec                 types.PayRecord
			date, file, extract sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.IndividualID, &date, &file, &extract); err != nil {
			return nil, fmt.Errorf("scanning pay statement: %w", err)
		}
		rec.Date = date.String
		rec.Filename = file.String
		rec.ExtractedAt = extract.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pay statements: %w", err)
	}
	return out, nil
}

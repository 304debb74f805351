package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no solve matches the requested ID.
var ErrNotFound = errors.New("store: solve not found")

// GetSolve fetches one solve by ID.
func (s *Store) GetSolve(ctx context.Context, id string) (*SolveRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, domain, created_at, inputs_json, outputs_json, error_kind, error_msg
		FROM solves
		WHERE id = ?
	`, id)

	rec, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get solve: %w", err)
	}
	return rec, nil
}

// ListSolves returns solves matching the filter, newest first.
func (s *Store) ListSolves(ctx context.Context, f Filter) ([]*SolveRecord, error) {
	query, args := f.compile()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list solves: %w", err)
	}
	defer rows.Close()

	var recs []*SolveRecord
	for rows.Next() {
		rec, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("list solves: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list solves: %w", err)
	}
	return recs, nil
}

// ListFirings returns a solve's trace in firing order. The solve must
// exist; a recorded solve with no firings returns an empty slice.
func (s *Store) ListFirings(ctx context.Context, solveID string) ([]FiringRecord, error) {
	if _, err := s.GetSolve(ctx, solveID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT solve_id, seq, pass, symbol, equation, value
		FROM firings
		WHERE solve_id = ?
		ORDER BY seq
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("list firings: %w", err)
	}
	defer rows.Close()

	firings := []FiringRecord{}
	for rows.Next() {
		var f FiringRecord
		if err := rows.Scan(&f.SolveID, &f.Seq, &f.Pass, &f.Symbol, &f.Equation, &f.Value); err != nil {
			return nil, fmt.Errorf("list firings: %w", err)
		}
		firings = append(firings, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list firings: %w", err)
	}
	return firings, nil
}

// scanner covers sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*SolveRecord, error) {
	var (
		rec       SolveRecord
		createdAt string
		inputs    string
		outputs   sql.NullString
		errKind   sql.NullString
		errMsg    sql.NullString
	)
	if err := row.Scan(&rec.ID, &rec.Domain, &createdAt, &inputs, &outputs, &errKind, &errMsg); err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	rec.CreatedAt = ts

	if rec.Inputs, err = unmarshalValues(sql.NullString{String: inputs, Valid: true}); err != nil {
		return nil, err
	}
	if rec.Outputs, err = unmarshalValues(outputs); err != nil {
		return nil, err
	}
	rec.ErrorKind = errKind.String
	rec.ErrorMsg = errMsg.String
	return &rec, nil
}

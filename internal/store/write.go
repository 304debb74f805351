package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/noether/solver"
)

// SolveRecord is one persisted solve. Outputs is nil and ErrorKind and
// ErrorMsg are set when the solve failed.
type SolveRecord struct {
	ID        string
	Domain    string
	CreatedAt time.Time
	Inputs    map[string]float64
	Outputs   map[string]float64
	ErrorKind string
	ErrorMsg  string
}

// FiringRecord is one persisted rule firing.
type FiringRecord struct {
	SolveID  string  `json:"solve_id"`
	Seq      int     `json:"seq"`
	Pass     int     `json:"pass"`
	Symbol   string  `json:"symbol"`
	Equation string  `json:"equation"`
	Value    float64 `json:"value"`
}

// RecordSolve persists one solve and its trace atomically, assigning
// the ID and timestamp, and returns the new ID. rec.ID and
// rec.CreatedAt are ignored on input.
func (s *Store) RecordSolve(ctx context.Context, rec SolveRecord, trace []solver.Firing) (string, error) {
	id, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("record solve: %w", err)
	}
	createdAt := s.now().UTC().Format(time.RFC3339Nano)

	inputsJSON, err := marshalValues(rec.Inputs)
	if err != nil {
		return "", fmt.Errorf("record solve: %w", err)
	}
	var outputsJSON any
	if rec.Outputs != nil {
		j, err := marshalValues(rec.Outputs)
		if err != nil {
			return "", fmt.Errorf("record solve: %w", err)
		}
		outputsJSON = j
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("record solve: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO solves
		(id, domain, created_at, inputs_json, outputs_json, error_kind, error_msg)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		id,
		rec.Domain,
		createdAt,
		inputsJSON,
		outputsJSON,
		nullIfEmpty(rec.ErrorKind),
		nullIfEmpty(rec.ErrorMsg),
	)
	if err != nil {
		return "", fmt.Errorf("record solve: insert solve: %w", err)
	}

	for seq, f := range trace {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO firings
			(solve_id, seq, pass, symbol, equation, value)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			id, seq, f.Pass, f.Symbol, f.Equation, f.Value,
		)
		if err != nil {
			return "", fmt.Errorf("record solve: insert firing %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("record solve: commit: %w", err)
	}
	return id, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

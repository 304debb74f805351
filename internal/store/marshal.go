package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// marshalValues serializes a value map as JSON with sorted keys, so
// identical solves produce byte-identical rows.
func marshalValues(values map[string]float64) (string, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("marshal values: %w", err)
	}
	return string(data), nil
}

// unmarshalValues parses a value column; NULL maps to nil.
func unmarshalValues(col sql.NullString) (map[string]float64, error) {
	if !col.Valid {
		return nil, nil
	}
	var values map[string]float64
	if err := json.Unmarshal([]byte(col.String), &values); err != nil {
		return nil, fmt.Errorf("unmarshal values: %w", err)
	}
	return values, nil
}

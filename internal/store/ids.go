package store

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces solve IDs. Production uses UUIDv7 so IDs sort
// by creation time; tests inject fixed sequences.
type IDGenerator interface {
	NewID() (string, error)
}

// UUIDv7Generator issues time-ordered UUIDs.
type UUIDv7Generator struct{}

// NewID implements IDGenerator.
func (UUIDv7Generator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate solve id: %w", err)
	}
	return id.String(), nil
}

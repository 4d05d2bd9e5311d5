package core

import (
	"github.com/google/uuid"
)

// RunID identifies one pipeline execution. It tags every log record and
// artifact the run produces.
type RunID string

// NewRunID creates a new run identifier using UUID v7 for time-ordered
// generation, falling back to v4 when v7 is unavailable.
func NewRunID() RunID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return RunID(id.String())
}

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// IsEmpty checks if the run ID is empty
func (id RunID) IsEmpty() bool {
	return id == ""
}

package driven

import (
	"context"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
)

// RecordSource enumerates the raw records of an SDF-like file.
type RecordSource interface {
	// Enumerate reads the file at path and returns its records in file
	// order, split at the "$$$$" terminator line. The terminator line
	// is included at the end of each record.
	Enumerate(ctx context.Context, path string) ([]domain.RawRecord, error)
}

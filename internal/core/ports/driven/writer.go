package driven

import (
	"context"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
)

// BlockWriter persists a group of molecule blocks to a destination.
type BlockWriter interface {
	// WriteGroup writes the blocks to path in order, each block line
	// newline-terminated. The destination is opened once, truncating
	// any prior content, and closed on every exit path.
	WriteGroup(ctx context.Context, path string, blocks []domain.MolBlock) error
}

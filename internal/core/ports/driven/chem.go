package driven

import (
	"context"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
)

// StructureNormaliser parses repaired molecule block text and produces
// a canonical re-serialisation.
type StructureNormaliser interface {
	// Normalise parses the block lines and returns the block in
	// canonical line form, with a fresh ID assigned. A block whose
	// structural body cannot be parsed fails with
	// domain.ErrUnparseableBlock; callers treat that as a data
	// condition, not a run failure.
	Normalise(ctx context.Context, lines []string) (*domain.MolBlock, error)

	// AtomCount returns the number of atoms declared by the block's
	// counts line. The block must already have passed Normalise.
	AtomCount(ctx context.Context, lines []string) (int, error)
}

// KeyDeriver converts a canonical chemical identifier into its derived
// key form.
type KeyDeriver interface {
	// DeriveKey maps a full canonical InChI (including the "InChI="
	// prefix) to its InChIKey. The identifier must be non-empty;
	// derivation is deterministic.
	DeriveKey(identifier string) (string, error)
}

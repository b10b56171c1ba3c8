package driving

import (
	"context"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
)

// ConvertRequest configures one conversion run. It replaces the global
// flag state of earlier tooling: callers pass configuration explicitly.
type ConvertRequest struct {
	// InputPath locates the SDF-like file to convert.
	InputPath string

	// FailedBlockFileName, when non-empty, names a file (inside
	// OutputDir) for blocks that normalised but lack required tags.
	// When empty, failed blocks are not written anywhere.
	FailedBlockFileName string

	// OutputDir is the destination directory. When empty, the input
	// file's directory is used.
	OutputDir string
}

// Converter repairs an SDF-like file into a standard SDF file.
type Converter interface {
	// Convert runs the full pipeline: enumerate records, repair and
	// normalise each block, partition by required-tag completeness,
	// write both groups and compute the maximum atom count over the
	// valid group.
	Convert(ctx context.Context, req ConvertRequest) (*domain.ConversionResult, error)
}

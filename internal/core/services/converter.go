package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
	"github.com/chemtab-labs/sdfix-cli/internal/core/ports/driven"
	"github.com/chemtab-labs/sdfix-cli/internal/core/ports/driving"
	"github.com/chemtab-labs/sdfix-cli/internal/logger"
)

// Ensure Converter implements the interface.
var _ driving.Converter = (*Converter)(nil)

// Converter coordinates the conversion of one SDF-like file:
// enumerate, repair, normalise, partition, write.
type Converter struct {
	source   driven.RecordSource
	chem     driven.StructureNormaliser
	repairer *Repairer
	writer   driven.BlockWriter
}

// NewConverter creates a new conversion orchestrator.
func NewConverter(
	source driven.RecordSource,
	chem driven.StructureNormaliser,
	repairer *Repairer,
	writer driven.BlockWriter,
) *Converter {
	return &Converter{
		source:   source,
		chem:     chem,
		repairer: repairer,
		writer:   writer,
	}
}

// Convert runs the full pipeline over req.InputPath.
//
// Blocks the normaliser rejects appear in neither output group; they
// are reported only through NumRejected. Blocks that normalise but
// lack required tags go to the failed group, written only when the
// caller supplied a failed-block file name.
func (c *Converter) Convert(ctx context.Context, req driving.ConvertRequest) (*domain.ConversionResult, error) {
	logger.Section("convert " + filepath.Base(req.InputPath))
	logger.Info("Converting started ...")

	records, err := c.source.Enumerate(ctx, req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("enumerate records: %w", err)
	}

	blocks := make([]domain.MolBlock, 0, len(records))
	rejected := 0
	for _, rec := range records {
		repaired, err := c.repairer.Repair(rec)
		if err != nil {
			return nil, fmt.Errorf("repair record: %w", err)
		}

		block, err := c.chem.Normalise(ctx, repaired)
		if err != nil {
			if errors.Is(err, domain.ErrUnparseableBlock) {
				rejected++
				logger.Warn("Dropping unparseable molecule block: %v", err)
				continue
			}
			return nil, fmt.Errorf("normalise block: %w", err)
		}
		blocks = append(blocks, *block)
	}

	valid, failed, err := partition(blocks)
	if err != nil {
		return nil, err
	}

	outDir, err := resolveOutputDir(req)
	if err != nil {
		return nil, err
	}

	result := &domain.ConversionResult{
		Valid:       valid,
		Failed:      failed,
		NumValid:    len(valid),
		NumFailed:   len(failed),
		NumRejected: rejected,
	}

	if len(valid) > 0 {
		result.OutputPath = filepath.Join(outDir, "converted_"+filepath.Base(req.InputPath))
		if err := c.writer.WriteGroup(ctx, result.OutputPath, valid); err != nil {
			return nil, fmt.Errorf("write converted file: %w", err)
		}

		result.MaxAtoms, err = c.maxAtoms(ctx, valid)
		if err != nil {
			return nil, err
		}
	}

	if req.FailedBlockFileName != "" && len(failed) > 0 {
		failedPath := filepath.Join(outDir, req.FailedBlockFileName)
		if err := c.writer.WriteGroup(ctx, failedPath, failed); err != nil {
			return nil, fmt.Errorf("write failed-block file: %w", err)
		}
	}

	logger.Info("Processing finished: %d converted, %d failed, %d rejected, max atoms %d",
		result.NumValid, result.NumFailed, result.NumRejected, result.MaxAtoms)
	return result, nil
}

// partition splits normalised blocks by required-tag completeness,
// preserving input order within each group.
func partition(blocks []domain.MolBlock) (valid, failed []domain.MolBlock, err error) {
	for _, block := range blocks {
		complete, err := block.HasAllRequired()
		if err != nil {
			return nil, nil, err
		}
		if complete {
			valid = append(valid, block)
		} else {
			failed = append(failed, block)
			logger.Debug("Block %s is missing required tags", block.ID)
		}
	}
	return valid, failed, nil
}

// maxAtoms returns the largest atom count among the blocks. The
// running maximum starts below any real count so an empty input yields
// exactly zero after clamping.
func (c *Converter) maxAtoms(ctx context.Context, blocks []domain.MolBlock) (int, error) {
	maxAtoms := -1
	for i := range blocks {
		n, err := c.chem.AtomCount(ctx, blocks[i].Lines)
		if err != nil {
			return 0, fmt.Errorf("count atoms: %w", err)
		}
		if n > maxAtoms {
			maxAtoms = n
		}
	}
	if maxAtoms < 0 {
		maxAtoms = 0
	}
	return maxAtoms, nil
}

// resolveOutputDir picks the destination directory: the configured one
// when set, the input file's directory otherwise. The directory is
// created if missing.
func resolveOutputDir(req driving.ConvertRequest) (string, error) {
	dir := req.OutputDir
	if dir == "" {
		dir = filepath.Dir(req.InputPath)
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return dir, nil
}

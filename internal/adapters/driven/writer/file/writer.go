// Package file implements the BlockWriter port over a local file.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
	"github.com/chemtab-labs/sdfix-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.BlockWriter = (*Writer)(nil)

// Writer persists molecule block groups to disk. One WriteGroup call
// is one write session: the file is opened once with truncation,
// written sequentially and closed on every exit path.
type Writer struct{}

// New creates a new file-backed block writer.
func New() *Writer {
	return &Writer{}
}

// WriteGroup writes the blocks to path in order, one newline-terminated
// line per block line.
func (w *Writer) WriteGroup(ctx context.Context, path string, blocks []domain.MolBlock) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	for i := range blocks {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, line := range blocks[i].Lines {
			if _, err := bw.WriteString(line + "\n"); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

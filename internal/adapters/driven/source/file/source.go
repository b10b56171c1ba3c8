package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
	"github.com/chemtab-labs/sdfix-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.RecordSource = (*Source)(nil)

// maxLineBytes bounds a single input line. MoNA peak lists can run to
// hundreds of kilobytes on one line.
const maxLineBytes = 1024 * 1024

// Source enumerates records from an SDF-like file on disk.
type Source struct{}

// New creates a new file-backed record source.
func New() *Source {
	return &Source{}
}

// Enumerate reads path and splits it into records at the "$$$$"
// terminator line. Leading and trailing blank lines are trimmed from
// each record; the terminator line is kept. Content after the last
// terminator is ignored, matching SDF reader behaviour.
func (s *Source) Enumerate(ctx context.Context, path string) ([]domain.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []domain.RawRecord
	var current []string
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := scanner.Text()
		current = append(current, line)
		if strings.TrimSpace(line) == domain.RecordTerminator {
			if lines := trimBlank(current); len(lines) > 0 {
				records = append(records, domain.RawRecord{Lines: lines})
			}
			current = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return records, nil
}

// trimBlank drops leading and trailing blank lines.
func trimBlank(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

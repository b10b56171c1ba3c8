package chem

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
	"github.com/chemtab-labs/sdfix-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.StructureNormaliser = (*Normaliser)(nil)

// Normaliser parses V2000 connection tables and re-serialises them in
// canonical form. It stands in for a full cheminformatics toolkit:
// structural validation is limited to the counts line, the atom block
// and the end-of-structure marker.
type Normaliser struct{}

// New creates a new structure normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise parses the block lines and returns the canonical form:
// a three-line header (title, program, comment), a reformatted counts
// line, the right-trimmed body and everything after it, ending with
// the record terminator. Blocks whose structural body cannot be parsed
// fail with domain.ErrUnparseableBlock.
func (n *Normaliser) Normalise(_ context.Context, lines []string) (*domain.MolBlock, error) {
	ci, natoms, nbonds, err := counts(lines)
	if err != nil {
		return nil, err
	}

	bodyEnd := ci + 1 + natoms + nbonds
	if bodyEnd > len(lines) {
		return nil, fmt.Errorf("%w: counts line declares %d atoms and %d bonds but only %d lines follow",
			domain.ErrUnparseableBlock, natoms, nbonds, len(lines)-ci-1)
	}
	for _, line := range lines[ci+1 : ci+1+natoms] {
		if err := checkAtomLine(line); err != nil {
			return nil, err
		}
	}
	if !hasEndMarker(lines[bodyEnd:]) {
		return nil, fmt.Errorf("%w: missing %q marker", domain.ErrUnparseableBlock, domain.EndOfStructure)
	}

	title := ""
	if ci > 0 {
		title = strings.TrimRight(lines[0], " \t")
	}

	out := make([]string, 0, len(lines)+4)
	out = append(out, title, "", "")
	out = append(out, countsLine(natoms, nbonds))
	for _, line := range lines[ci+1:] {
		out = append(out, strings.TrimRight(line, " \t"))
	}
	if strings.TrimSpace(out[len(out)-1]) != domain.RecordTerminator {
		out = append(out, domain.RecordTerminator)
	}

	return &domain.MolBlock{ID: uuid.New().String(), Lines: out}, nil
}

// AtomCount returns the atom count declared by the block's counts line.
func (n *Normaliser) AtomCount(_ context.Context, lines []string) (int, error) {
	_, natoms, _, err := counts(lines)
	if err != nil {
		return 0, err
	}
	return natoms, nil
}

// counts locates the V2000 counts line and reads its atom and bond
// count fields.
func counts(lines []string) (index, natoms, nbonds int, err error) {
	for i, line := range lines {
		if !strings.Contains(line, domain.CountsMarker) {
			continue
		}
		natoms, nbonds, err = parseCounts(line)
		if err != nil {
			return 0, 0, 0, err
		}
		return i, natoms, nbonds, nil
	}
	return 0, 0, 0, fmt.Errorf("%w: no counts line", domain.ErrUnparseableBlock)
}

// parseCounts reads the fixed-width atom and bond count fields
// (columns 1-3 and 4-6) of a V2000 counts line.
func parseCounts(line string) (natoms, nbonds int, err error) {
	if len(line) < 6 {
		return 0, 0, fmt.Errorf("%w: short counts line %q", domain.ErrUnparseableBlock, line)
	}
	natoms, err = strconv.Atoi(strings.TrimSpace(line[0:3]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad atom count in %q", domain.ErrUnparseableBlock, line)
	}
	nbonds, err = strconv.Atoi(strings.TrimSpace(line[3:6]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad bond count in %q", domain.ErrUnparseableBlock, line)
	}
	if natoms < 0 || nbonds < 0 {
		return 0, 0, fmt.Errorf("%w: negative counts in %q", domain.ErrUnparseableBlock, line)
	}
	return natoms, nbonds, nil
}

// checkAtomLine verifies an atom block line: three coordinates
// followed by an element symbol.
func checkAtomLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return fmt.Errorf("%w: short atom line %q", domain.ErrUnparseableBlock, line)
	}
	for _, f := range fields[:3] {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return fmt.Errorf("%w: bad coordinate %q in atom line", domain.ErrUnparseableBlock, f)
		}
	}
	if _, err := strconv.ParseFloat(fields[3], 64); err == nil {
		return fmt.Errorf("%w: numeric element symbol %q", domain.ErrUnparseableBlock, fields[3])
	}
	return nil
}

func hasEndMarker(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == domain.EndOfStructure {
			return true
		}
	}
	return false
}

// countsLine renders a canonical V2000 counts line.
func countsLine(natoms, nbonds int) string {
	return fmt.Sprintf("%3d%3d  0  0  0  0  0  0  0  0999 %s", natoms, nbonds, domain.CountsMarker)
}

package services

import (
	"fmt"
	"strings"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
	"github.com/chemtab-labs/sdfix-cli/internal/core/ports/driven"
	"github.com/chemtab-labs/sdfix-cli/internal/logger"
)

// Repairer rewrites one raw MoNA record into a structurally valid
// molecule block. MoNA exports omit the program line of the molfile
// header and the "M  END" end-of-structure marker, and store the InChI
// inside the comment section instead of its own tagged section.
type Repairer struct {
	keys driven.KeyDeriver
}

// NewRepairer creates a repairer using the given key deriver for
// InChI to InChIKey conversion.
func NewRepairer(keys driven.KeyDeriver) *Repairer {
	return &Repairer{keys: keys}
}

// Repair rewrites the record's lines in a single forward pass:
//
//   - the counts line gets a blank program line inserted before it,
//     completing the three-line molfile header
//   - the NAME section header marks where the structural body ends, so
//     "M  END" is inserted before it
//   - the record terminator gets INCHI and INCHIKEY property sections
//     inserted before it, the InChI read from the comment section and
//     the key derived from it
//
// A record with no counts line and no NAME header is passed through
// with only the terminator-triggered insertion; downstream
// normalisation will reject it.
func (r *Repairer) Repair(rec domain.RawRecord) ([]string, error) {
	lines := make([]string, 0, len(rec.Lines)+8)
	for _, line := range rec.Lines {
		switch {
		case strings.Contains(line, domain.CountsMarker):
			lines = append(lines, "", line)

		case strings.Contains(line, domain.TagName.Header()):
			lines = append(lines, domain.EndOfStructure, line)

		case strings.Contains(line, domain.RecordTerminator):
			inchi, key, err := r.identifiers(lines)
			if err != nil {
				return nil, err
			}
			lines = append(lines, domain.TagInChI.Header(), inchi, "")
			lines = append(lines, domain.TagInChIKey.Header(), key, "", line)

		default:
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// identifiers reads the InChI accumulated so far and derives its key.
// An empty InChI yields an empty key without calling the deriver.
func (r *Repairer) identifiers(lines []string) (inchi, key string, err error) {
	block := &domain.MolBlock{Lines: lines}
	inchi, err = block.Property(domain.TagInChI)
	if err != nil {
		return "", "", err
	}
	if inchi == "" {
		return "", "", nil
	}

	key, err = r.keys.DeriveKey(domain.InChIPrefix + inchi)
	if err != nil {
		return "", "", fmt.Errorf("derive key: %w", err)
	}
	logger.Debug("InChI %s has InChIKey %s", inchi, key)
	return inchi, key, nil
}

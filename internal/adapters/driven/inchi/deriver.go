// Package inchi implements the KeyDeriver port: a deterministic
// InChI to InChIKey conversion.
package inchi

import (
	"crypto/sha256"
	"fmt"

	"github.com/chemtab-labs/sdfix-cli/internal/core/domain"
	"github.com/chemtab-labs/sdfix-cli/internal/core/ports/driven"
)

// Ensure Deriver implements the interface.
var _ driven.KeyDeriver = (*Deriver)(nil)

// Deriver maps canonical InChI strings to InChIKey-shaped digests:
// fourteen letters, a hyphen, ten letters (eight hash letters plus the
// "SA" standard-key flags), a hyphen and the "N" protonation letter.
// The mapping is a SHA-256 digest of the identifier, so equal inputs
// always produce equal keys.
type Deriver struct{}

// New creates a new key deriver.
func New() *Deriver {
	return &Deriver{}
}

// DeriveKey converts a non-empty canonical identifier to its key.
func (d *Deriver) DeriveKey(identifier string) (string, error) {
	if identifier == "" {
		return "", fmt.Errorf("%w: empty identifier", domain.ErrInvalidInput)
	}

	sum := sha256.Sum256([]byte(identifier))
	return fmt.Sprintf("%s-%sSA-N", letters(sum[:14]), letters(sum[14:22])), nil
}

// letters maps digest bytes onto uppercase letters.
func letters(b []byte) string {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = 'A' + v%26
	}
	return string(out)
}

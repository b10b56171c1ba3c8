package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTag indicates a property lookup with a tag outside the
	// supported set. This is a programming error, not a data condition.
	ErrUnknownTag = errors.New("unsupported property tag")

	// ErrUnparseableBlock indicates the structure normaliser could not
	// parse a molecule block. Callers treat this as a data condition:
	// the block is excluded from the results, not reported as a failure
	// of the run.
	ErrUnparseableBlock = errors.New("unparseable molecule block")
)

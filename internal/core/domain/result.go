package domain

// ConversionResult is the aggregate outcome of one conversion run.
// It is immutable after the orchestrator returns it.
type ConversionResult struct {
	// Valid holds the blocks carrying all required tags, in input order.
	Valid []MolBlock

	// Failed holds the blocks that normalised successfully but lack at
	// least one required tag, in input order.
	Failed []MolBlock

	// NumValid is len(Valid).
	NumValid int

	// NumFailed is len(Failed).
	NumFailed int

	// NumRejected counts blocks the structure normaliser refused.
	// Rejected blocks appear in neither group.
	NumRejected int

	// MaxAtoms is the largest atom count among the valid blocks,
	// 0 when Valid is empty.
	MaxAtoms int

	// OutputPath is where the valid group was written, "" when the
	// valid group was empty and no file was created.
	OutputPath string
}

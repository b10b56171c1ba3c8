// Package domain defines the core business entities for sdfix.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRecord: One record's lines as read from a MoNA SDF-like file
//   - MolBlock: A molecule block, with property lookup behaviour
//   - PropertyTag: The closed set of required SDF property tags
//   - ConversionResult: The aggregate outcome of a conversion run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

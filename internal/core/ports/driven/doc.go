// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RecordSource: Enumerates raw records from an SDF-like file
//   - StructureNormaliser: Parses and canonically re-serialises a block
//   - KeyDeriver: Derives an InChIKey from a canonical InChI
//   - BlockWriter: Persists a group of molecule blocks
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

// Package chem implements the StructureNormaliser port with a minimal
// V2000 connection table parser.
package chem

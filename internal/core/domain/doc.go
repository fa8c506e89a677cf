// Package domain defines the core business entities for Clipfold.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ParseRecord: One entry in the parse/assignment history
//   - Note: A curated note filed into a notebook
//   - Notebook: A named collection of notes
//   - CapturedPage: Readable text fetched from a pasted link
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

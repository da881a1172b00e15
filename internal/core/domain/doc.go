// Package domain defines the core business entities for sercha-notes.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Note: A user note (text, transcribed audio, OCR'd photo, transcribed video)
//   - Fact: A structured assertion extracted from a note body
//   - Trigger: The parsed date or mileage condition attached to a Fact
//   - AskResult: A synthesised answer plus ranked evidence
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

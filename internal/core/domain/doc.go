// Package domain defines the core business entities for parliament-mcp.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FilterCondition: An engine-agnostic search predicate
//   - DebateGroup: A debate section with its supporting contribution hits
//   - ContributionHit: A single Hansard contribution returned by search
//   - QuestionRecord: A parliamentary written question with its answer
//   - QuestionChunk: A stored fragment of a question or answer
//   - ContributorGroup: A member's top contributions for a query
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

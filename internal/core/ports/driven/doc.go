// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SearchBackend: hybrid retrieval over the indexed Parliament corpora.
//     Two interchangeable implementations exist (vector database,
//     full-text engine); core never sees which one it is talking to.
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DenseEmbedder: query embedding via a remote provider. Without it,
//     free-text (semantic) search is disabled and only filtered browsing
//     works.
//   - SparseEmbedder: local term-weighted query encoding for the lexical
//     fusion channel. Without it, fused queries run dense-only.
//   - MembersAPI: the UK Parliament Members REST API. Without it, the
//     member metadata tools are disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

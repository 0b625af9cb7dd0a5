package driven

import (
	"context"

	"github.com/openparl/parliament-mcp/internal/core/domain"
)

// SearchBackend provides hybrid retrieval over an indexed Parliament
// corpus. The two concrete engines differ in where fusion and grouping
// run (engine-side or adapter-side); callers see identical semantics.
//
// Every method propagates engine errors to the caller unchanged: a failed
// query fails the whole request, and an empty result set is an empty
// slice, never an error.
type SearchBackend interface {
	// FilteredScan returns up to Limit documents matching the filter,
	// without ranking. A nil filter matches everything.
	FilteredScan(ctx context.Context, q ScanQuery) ([]Hit, error)

	// SemanticMatch ranks documents of one text field against the query
	// text using the engine's native semantic index, constrained by the
	// filter.
	SemanticMatch(ctx context.Context, q SemanticQuery) ([]Hit, error)

	// FusedVectorQuery issues the dense and sparse channels as independent
	// ranked candidate lists and combines them with reciprocal rank
	// fusion, constrained by the filter.
	FusedVectorQuery(ctx context.Context, q FusedQuery) ([]Hit, error)

	// GroupedFusedVectorQuery is FusedVectorQuery with the fused ranking
	// grouped by a payload field, each group capped at GroupSize hits.
	// With a nil Dense and Sparse it degrades to a grouped filtered scan.
	GroupedFusedVectorQuery(ctx context.Context, q GroupedQuery) ([]HitGroup, error)

	// Close releases client resources.
	Close() error
}

// SparseVector is a term-weighted query vector for the lexical channel.
type SparseVector struct {
	// Indices are hashed term ids.
	Indices []uint32

	// Values are the corresponding term weights.
	Values []float32
}

// ScanQuery parameterises a filter-only browse.
type ScanQuery struct {
	// Collection names the corpus to scan.
	Collection string

	// Filter constrains the scan; nil matches all.
	Filter *domain.Filter

	// Limit caps the returned documents.
	Limit int
}

// SemanticQuery parameterises a single-field semantic match.
type SemanticQuery struct {
	// Collection names the corpus to search.
	Collection string

	// Field is the text field with semantic indexing.
	Field string

	// Query is the free text to rank against.
	Query string

	// Filter constrains candidates; nil matches all.
	Filter *domain.Filter

	// Limit caps the returned documents.
	Limit int
}

// FusedQuery parameterises a dense+sparse fused retrieval.
type FusedQuery struct {
	// Collection names the corpus to search.
	Collection string

	// Text is the raw query text. Engines whose lexical channel is a
	// keyword index use it; engines with sparse vector support ignore it.
	Text string

	// Dense is the embedded query for the semantic channel.
	Dense []float32

	// Sparse is the term-weighted query for the lexical channel. May be
	// empty, in which case only the dense channel runs.
	Sparse SparseVector

	// Filter constrains both channels identically; nil matches all.
	Filter *domain.Filter

	// Limit caps the fused result.
	Limit int

	// PerChannelLimit caps each channel's candidate list before fusion.
	// Typically 2x Limit so fusion has enough candidates.
	PerChannelLimit int

	// MinScore discards fused candidates below this score. Zero disables
	// the threshold.
	MinScore float64
}

// GroupedQuery parameterises a grouped fused retrieval.
type GroupedQuery struct {
	// Collection names the corpus to search.
	Collection string

	// Text is the raw query text for keyword-index lexical channels.
	Text string

	// Dense and Sparse are the query channels; both nil/empty means a
	// grouped filtered scan.
	Dense  []float32
	Sparse SparseVector

	// Filter constrains candidates; nil matches all.
	Filter *domain.Filter

	// GroupBy is the payload field to group hits by.
	GroupBy string

	// GroupLimit caps the number of groups returned.
	GroupLimit int

	// GroupSize caps the hits retained per group.
	GroupSize int

	// PerChannelLimit caps each channel's candidate list before fusion.
	PerChannelLimit int
}

// Hit is a single backend document with its untyped payload. Payloads are
// duck-typed engine records; they must not travel past the core result
// formatter.
type Hit struct {
	// ID is the backend's document id.
	ID string

	// Score is the hit's rank score. Zero for unranked scans.
	Score float64

	// Payload is the stored document fields, keyed by field name.
	Payload map[string]any
}

// HitGroup is the hits sharing one grouping key.
type HitGroup struct {
	// Key is the grouping field value.
	Key string

	// Hits are the group's retained hits, best first.
	Hits []Hit
}

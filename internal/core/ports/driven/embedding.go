package driven

import "context"

// DenseEmbedder generates dense vector embeddings from text via a remote
// provider. This is an optional service - when nil, query-driven search is
// disabled and only filtered browsing works.
//
// Implementations make one provider call per invocation and never retry;
// retry policy, if any, belongs to the provider's own client. They must be
// safe for concurrent use across independent requests.
type DenseEmbedder interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one call.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size. This is a
	// deployment-time constant and must match the backend's collection
	// configuration.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the provider is reachable with a lightweight request.
	// Used at startup before committing to semantic search.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// SparseEmbedder encodes text into a term-weighted sparse vector for the
// lexical fusion channel. Implementations run locally and synchronously,
// hold only read-only state after construction, and are safe for
// concurrent use.
type SparseEmbedder interface {
	// Embed encodes the text into index/weight pairs.
	Embed(text string) SparseVector
}

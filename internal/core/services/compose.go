package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/openparl/parliament-mcp/internal/core/domain"
	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
)

// embedQuery produces the dense and sparse query vectors for a hybrid
// search. The two encoders run concurrently; the sparse channel is
// optional and its absence degrades the search to dense-only fusion.
func (s *ParliamentSearchService) embedQuery(ctx context.Context, query string) ([]float32, driven.SparseVector, error) {
	if s.dense == nil {
		return nil, driven.SparseVector{}, fmt.Errorf("%w: no dense embedder configured", domain.ErrEmbeddingUnavailable)
	}

	var (
		dense  []float32
		sparse driven.SparseVector
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dense, err = s.dense.Embed(gctx, query)
		if err != nil {
			return fmt.Errorf("dense embedding: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if s.sparse != nil {
			sparse = s.sparse.Embed(query)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, driven.SparseVector{}, err
	}
	return dense, sparse, nil
}

// Package meili implements the SearchBackend port against a Meilisearch
// deployment. The engine has a keyword index and (via a configured
// embedder) a semantic channel, but no sparse vectors, no rank fusion and
// no grouped retrieval; the lexical channel runs on query text and
// fusion and grouping are emulated adapter-side.
package meili

import (
	"context"
	"fmt"
	"strconv"

	"github.com/meilisearch/meilisearch-go"
	"golang.org/x/sync/errgroup"

	"github.com/openparl/parliament-mcp/internal/core/domain"
	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
	"github.com/openparl/parliament-mcp/internal/logger"
)

// Config holds the connection settings for a Meilisearch deployment.
type Config struct {
	// Host is the full base URL, e.g. "http://localhost:7700".
	Host string

	// APIKey authenticates against a keyed deployment. Optional.
	APIKey string

	// Embedder names the index's configured embedder for the semantic
	// channel. Empty disables semantic and fused retrieval.
	Embedder string

	// SemanticRatio balances keyword and semantic ranking for
	// SemanticMatch. Zero means 0.5.
	SemanticRatio float64
}

// Backend is the Meilisearch-backed SearchBackend.
type Backend struct {
	client        meilisearch.ServiceManager
	embedder      string
	semanticRatio float64
}

var _ driven.SearchBackend = (*Backend)(nil)

// New connects to the deployment.
func New(cfg Config) (*Backend, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: no meilisearch host configured", domain.ErrBackendUnavailable)
	}
	ratio := cfg.SemanticRatio
	if ratio == 0 {
		ratio = 0.5
	}
	client := meilisearch.New(cfg.Host, meilisearch.WithAPIKey(cfg.APIKey))
	logger.Debug("meilisearch backend connected to %s", cfg.Host)
	return &Backend{client: client, embedder: cfg.Embedder, semanticRatio: ratio}, nil
}

// FilteredScan browses documents with a placeholder search, which returns
// everything matching the filter in stored order.
func (b *Backend) FilteredScan(ctx context.Context, q driven.ScanQuery) ([]driven.Hit, error) {
	req := &meilisearch.SearchRequest{Limit: int64(q.Limit)}
	if expr := renderFilter(q.Filter); expr != "" {
		req.Filter = expr
	}
	resp, err := b.client.Index(q.Collection).SearchWithContext(ctx, "", req)
	if err != nil {
		return nil, fmt.Errorf("meilisearch scan %s: %w", q.Collection, err)
	}
	return hitsFromResponse(resp, false), nil
}

// SemanticMatch runs the engine's own hybrid ranking: Meilisearch embeds
// the query text with the index's configured embedder, so no caller-side
// embedding is needed. The field parameter is implicit in the index's
// searchable attributes.
func (b *Backend) SemanticMatch(ctx context.Context, q driven.SemanticQuery) ([]driven.Hit, error) {
	if b.embedder == "" {
		return nil, fmt.Errorf("%w: no meilisearch embedder configured", domain.ErrEmbeddingUnavailable)
	}
	req := &meilisearch.SearchRequest{
		Limit:            int64(q.Limit),
		ShowRankingScore: true,
		Hybrid: &meilisearch.SearchRequestHybrid{
			SemanticRatio: b.semanticRatio,
			Embedder:      b.embedder,
		},
	}
	if expr := renderFilter(q.Filter); expr != "" {
		req.Filter = expr
	}
	resp, err := b.client.Index(q.Collection).SearchWithContext(ctx, q.Query, req)
	if err != nil {
		return nil, fmt.Errorf("meilisearch semantic match %s: %w", q.Collection, err)
	}
	return hitsFromResponse(resp, true), nil
}

// FusedVectorQuery issues the keyword channel on the query text and the
// semantic channel on the caller's dense vector, then fuses the two
// rankings adapter-side. The sparse vector is ignored: the engine's
// keyword index already is the lexical channel.
func (b *Backend) FusedVectorQuery(ctx context.Context, q driven.FusedQuery) ([]driven.Hit, error) {
	fused, err := b.fusedHits(ctx, q.Collection, q.Text, q.Dense, q.Filter, q.PerChannelLimit, q.MinScore)
	if err != nil {
		return nil, err
	}
	if q.Limit > 0 && len(fused) > q.Limit {
		fused = fused[:q.Limit]
	}
	logger.Debug("meilisearch fused query on %s returned %d hits", q.Collection, len(fused))
	return fused, nil
}

// GroupedFusedVectorQuery emulates grouped retrieval: it over-fetches the
// flat (fused or scanned) ranking and partitions it by the grouping field,
// preserving rank order within and across groups.
func (b *Backend) GroupedFusedVectorQuery(ctx context.Context, q driven.GroupedQuery) ([]driven.HitGroup, error) {
	fetch := q.GroupLimit * q.GroupSize
	if fetch <= 0 {
		fetch = q.PerChannelLimit
	}

	var (
		hits []driven.Hit
		err  error
	)
	if len(q.Dense) > 0 || q.Text != "" {
		hits, err = b.fusedHits(ctx, q.Collection, q.Text, q.Dense, q.Filter, q.PerChannelLimit, 0)
	} else {
		hits, err = b.FilteredScan(ctx, driven.ScanQuery{
			Collection: q.Collection,
			Filter:     q.Filter,
			Limit:      fetch,
		})
	}
	if err != nil {
		return nil, err
	}

	groups := groupHits(hits, q.GroupBy, q.GroupLimit, q.GroupSize)
	logger.Debug("meilisearch grouped query on %s by %s returned %d groups", q.Collection, q.GroupBy, len(groups))
	return groups, nil
}

// Close releases idle connections.
func (b *Backend) Close() error {
	b.client.Close()
	return nil
}

// fusedHits runs both channels concurrently and merges them with
// reciprocal rank fusion. A zero minScore disables the threshold, which
// otherwise applies to the engine's normalised per-channel scores; fused
// rank scores live on a different scale.
func (b *Backend) fusedHits(ctx context.Context, collection, text string, dense []float32, filter *domain.Filter, perChannel int, minScore float64) ([]driven.Hit, error) {
	expr := renderFilter(filter)

	var lexical, semantic []driven.Hit
	g, gctx := errgroup.WithContext(ctx)
	if text != "" {
		g.Go(func() error {
			req := &meilisearch.SearchRequest{
				Limit:            int64(perChannel),
				ShowRankingScore: true,
			}
			if expr != "" {
				req.Filter = expr
			}
			resp, err := b.client.Index(collection).SearchWithContext(gctx, text, req)
			if err != nil {
				return fmt.Errorf("meilisearch keyword channel %s: %w", collection, err)
			}
			lexical = hitsFromResponse(resp, true)
			return nil
		})
	}
	if len(dense) > 0 {
		if b.embedder == "" {
			return nil, fmt.Errorf("%w: no meilisearch embedder configured", domain.ErrEmbeddingUnavailable)
		}
		g.Go(func() error {
			req := &meilisearch.SearchRequest{
				Limit:            int64(perChannel),
				ShowRankingScore: true,
				Vector:           dense,
				Hybrid: &meilisearch.SearchRequestHybrid{
					SemanticRatio: 1,
					Embedder:      b.embedder,
				},
			}
			if expr != "" {
				req.Filter = expr
			}
			resp, err := b.client.Index(collection).SearchWithContext(gctx, "", req)
			if err != nil {
				return fmt.Errorf("meilisearch semantic channel %s: %w", collection, err)
			}
			semantic = hitsFromResponse(resp, true)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if minScore > 0 {
		lexical = dropBelow(lexical, minScore)
		semantic = dropBelow(semantic, minScore)
	}
	return reciprocalRankFusion(lexical, semantic, 60), nil
}

func dropBelow(hits []driven.Hit, minScore float64) []driven.Hit {
	kept := hits[:0]
	for _, h := range hits {
		if h.Score >= minScore {
			kept = append(kept, h)
		}
	}
	return kept
}

// hitsFromResponse converts the engine's loosely typed hits. The document
// id field is "id"; the ranking score rides along as "_rankingScore" when
// requested.
func hitsFromResponse(resp *meilisearch.SearchResponse, scored bool) []driven.Hit {
	hits := make([]driven.Hit, 0, len(resp.Hits))
	for _, raw := range resp.Hits {
		var payload map[string]any
		if err := raw.Decode(&payload); err != nil {
			continue
		}
		hit := driven.Hit{Payload: payload}
		switch id := payload["id"].(type) {
		case string:
			hit.ID = id
		case float64:
			hit.ID = strconv.FormatInt(int64(id), 10)
		}
		if scored {
			if score, ok := payload["_rankingScore"].(float64); ok {
				hit.Score = score
			}
		}
		hits = append(hits, hit)
	}
	return hits
}

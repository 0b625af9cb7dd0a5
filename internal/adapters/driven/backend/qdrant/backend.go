// Package qdrant implements the SearchBackend port against a Qdrant
// deployment. The engine runs fusion and grouping server-side: the dense
// and sparse channels are issued as prefetch queries over the collection's
// named vectors and combined with reciprocal rank fusion, and grouped
// retrieval maps directly onto the points-group API.
package qdrant

import (
	"context"
	"fmt"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"github.com/openparl/parliament-mcp/internal/core/domain"
	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
	"github.com/openparl/parliament-mcp/internal/logger"
)

// Named vectors every collection carries, matching the loader's schema.
const (
	denseVectorName  = "text_dense"
	sparseVectorName = "text_sparse"
)

// Config holds the connection settings for a Qdrant deployment.
type Config struct {
	// Host is the gRPC host, e.g. "localhost".
	Host string

	// Port is the gRPC port. Zero means 6334.
	Port int

	// APIKey authenticates against a secured deployment. Optional.
	APIKey string

	// UseTLS enables TLS on the gRPC channel. Required for cloud
	// deployments.
	UseTLS bool
}

// Backend is the Qdrant-backed SearchBackend.
type Backend struct {
	client *qdrant.Client
}

var _ driven.SearchBackend = (*Backend)(nil)

// New connects to the deployment. The client is lazy; connectivity errors
// surface on the first query.
func New(cfg Config) (*Backend, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: no qdrant host configured", domain.ErrBackendUnavailable)
	}
	port := cfg.Port
	if port == 0 {
		port = 6334
	}
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant client: %w", err)
	}
	logger.Debug("qdrant backend connected to %s:%d", cfg.Host, port)
	return &Backend{client: client}, nil
}

// FilteredScan browses points by filter in stored order.
func (b *Backend) FilteredScan(ctx context.Context, q driven.ScanQuery) ([]driven.Hit, error) {
	limit := uint32(q.Limit)
	points, err := b.client.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: q.Collection,
		Filter:         translateFilter(q.Filter),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant scroll %s: %w", q.Collection, err)
	}

	hits := make([]driven.Hit, 0, len(points))
	for _, p := range points {
		hits = append(hits, driven.Hit{
			ID:      pointID(p.Id),
			Payload: translatePayload(p.Payload),
		})
	}
	return hits, nil
}

// SemanticMatch needs engine-side text inference, which a plain Qdrant
// deployment does not do. Callers must embed queries themselves.
func (b *Backend) SemanticMatch(_ context.Context, q driven.SemanticQuery) ([]driven.Hit, error) {
	return nil, fmt.Errorf("%w: qdrant cannot rank text queries without an embedder", domain.ErrEmbeddingUnavailable)
}

// FusedVectorQuery runs both channels as prefetches and fuses them with
// RRF server-side. With an empty sparse vector only the dense channel runs.
func (b *Backend) FusedVectorQuery(ctx context.Context, q driven.FusedQuery) ([]driven.Hit, error) {
	filter := translateFilter(q.Filter)
	limit := uint64(q.Limit)
	query := &qdrant.QueryPoints{
		CollectionName: q.Collection,
		Filter:         filter,
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	}
	applyChannels(query, q.Dense, q.Sparse, filter, q.PerChannelLimit)
	if q.MinScore > 0 {
		threshold := float32(q.MinScore)
		query.ScoreThreshold = &threshold
	}

	points, err := b.client.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("qdrant query %s: %w", q.Collection, err)
	}

	hits := make([]driven.Hit, 0, len(points))
	for _, p := range points {
		hits = append(hits, scoredHit(p))
	}
	logger.Debug("qdrant fused query on %s returned %d hits", q.Collection, len(hits))
	return hits, nil
}

// GroupedFusedVectorQuery runs the fused retrieval grouped by a payload
// field. Without vectors it degrades to grouped browsing over the filter.
func (b *Backend) GroupedFusedVectorQuery(ctx context.Context, q driven.GroupedQuery) ([]driven.HitGroup, error) {
	filter := translateFilter(q.Filter)
	limit := uint64(q.GroupLimit)
	groupSize := uint64(q.GroupSize)
	query := &qdrant.QueryPointGroups{
		CollectionName: q.Collection,
		Filter:         filter,
		GroupBy:        q.GroupBy,
		GroupSize:      &groupSize,
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	}
	if len(q.Dense) > 0 {
		prefetchInto(query, q.Dense, q.Sparse, filter, q.PerChannelLimit)
	}

	groups, err := b.client.QueryGroups(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("qdrant grouped query %s: %w", q.Collection, err)
	}

	result := make([]driven.HitGroup, 0, len(groups))
	for _, g := range groups {
		group := driven.HitGroup{
			Key:  groupKey(g.Id),
			Hits: make([]driven.Hit, 0, len(g.Hits)),
		}
		for _, p := range g.Hits {
			group.Hits = append(group.Hits, scoredHit(p))
		}
		result = append(result, group)
	}
	logger.Debug("qdrant grouped query on %s by %s returned %d groups", q.Collection, q.GroupBy, len(result))
	return result, nil
}

// Close releases the gRPC channel.
func (b *Backend) Close() error {
	return b.client.Close()
}

// applyChannels attaches the query channels to a flat query: prefetch
// fusion when both channels are present, a plain dense query otherwise.
func applyChannels(query *qdrant.QueryPoints, dense []float32, sparse driven.SparseVector, filter *qdrant.Filter, perChannel int) {
	if len(sparse.Indices) == 0 {
		query.Query = qdrant.NewQueryDense(dense)
		query.Using = qdrant.PtrOf(denseVectorName)
		return
	}
	query.Prefetch = channelPrefetches(dense, sparse, filter, perChannel)
	query.Query = qdrant.NewQueryFusion(qdrant.Fusion_RRF)
}

// prefetchInto is applyChannels for the grouped query shape.
func prefetchInto(query *qdrant.QueryPointGroups, dense []float32, sparse driven.SparseVector, filter *qdrant.Filter, perChannel int) {
	if len(sparse.Indices) == 0 {
		query.Query = qdrant.NewQueryDense(dense)
		query.Using = qdrant.PtrOf(denseVectorName)
		return
	}
	query.Prefetch = channelPrefetches(dense, sparse, filter, perChannel)
	query.Query = qdrant.NewQueryFusion(qdrant.Fusion_RRF)
}

func channelPrefetches(dense []float32, sparse driven.SparseVector, filter *qdrant.Filter, perChannel int) []*qdrant.PrefetchQuery {
	limit := uint64(perChannel)
	return []*qdrant.PrefetchQuery{
		{
			Query:  qdrant.NewQueryDense(dense),
			Using:  qdrant.PtrOf(denseVectorName),
			Filter: filter,
			Limit:  &limit,
		},
		{
			Query:  qdrant.NewQuerySparse(sparse.Indices, sparse.Values),
			Using:  qdrant.PtrOf(sparseVectorName),
			Filter: filter,
			Limit:  &limit,
		},
	}
}

func scoredHit(p *qdrant.ScoredPoint) driven.Hit {
	return driven.Hit{
		ID:      pointID(p.Id),
		Score:   float64(p.Score),
		Payload: translatePayload(p.Payload),
	}
}

func pointID(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	if uuid := id.GetUuid(); uuid != "" {
		return uuid
	}
	return strconv.FormatUint(id.GetNum(), 10)
}

func groupKey(id *qdrant.GroupId) string {
	if id == nil {
		return ""
	}
	switch {
	case id.GetStringValue() != "":
		return id.GetStringValue()
	case id.GetIntegerValue() != 0:
		return strconv.FormatInt(id.GetIntegerValue(), 10)
	case id.GetUnsignedValue() != 0:
		return strconv.FormatUint(id.GetUnsignedValue(), 10)
	}
	return ""
}

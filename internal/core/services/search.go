package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/openparl/parliament-mcp/internal/core/domain"
	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
	"github.com/openparl/parliament-mcp/internal/core/ports/driving"
	"github.com/openparl/parliament-mcp/internal/logger"
)

// MinimumDebateHits is the grouping floor for debate title search. A
// debate with fewer matching contributions than this is dropped from
// the result set before ranking.
const MinimumDebateHits = 2

// Default result caps applied when a request leaves MaxResults unset.
const (
	defaultDebateResults       = 50
	defaultContributionResults = 50
	defaultQuestionResults     = 25
	defaultNumContributors     = 10
	defaultNumContributions    = 10
)

// SearchConfig carries the tuning knobs for the search service.
type SearchConfig struct {
	// ContributionsCollection holds one point per debate contribution.
	ContributionsCollection string
	// QuestionsCollection holds one point per question or answer chunk.
	QuestionsCollection string
	// Overfetch multiplies the per-channel candidate depth fed into
	// rank fusion relative to the requested result count.
	Overfetch int
	// MinScore drops fused hits below this score. Zero disables it.
	MinScore float64
	// DebateGroupSize caps hits retained per debate group.
	DebateGroupSize int
	// QuestionGroupSize caps chunks retained per question document. It
	// must cover every chunk of a question for reassembly to be complete.
	QuestionGroupSize int
	// BackendTimeout bounds each backend round trip.
	BackendTimeout time.Duration
}

// DefaultSearchConfig returns the standard tuning used by the CLI.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		ContributionsCollection: "parliamentary_contributions",
		QuestionsCollection:     "parliamentary_questions",
		Overfetch:               2,
		MinScore:                0.3,
		DebateGroupSize:         5,
		QuestionGroupSize:       10,
		BackendTimeout:          30 * time.Second,
	}
}

// ParliamentSearchService implements driving.ParliamentSearch on top of
// a vector search backend and a pair of query embedders. The sparse
// embedder and the dense embedder are optional as a pair: without them
// only filter-driven (query-less) operations succeed.
type ParliamentSearchService struct {
	backend driven.SearchBackend
	dense   driven.DenseEmbedder
	sparse  driven.SparseEmbedder
	cfg     SearchConfig
}

var _ driving.ParliamentSearch = (*ParliamentSearchService)(nil)

// NewParliamentSearchService wires the search service. dense and sparse
// may be nil for filter-only deployments.
func NewParliamentSearchService(backend driven.SearchBackend, dense driven.DenseEmbedder, sparse driven.SparseEmbedder, cfg SearchConfig) *ParliamentSearchService {
	if cfg.Overfetch <= 0 {
		cfg.Overfetch = 2
	}
	if cfg.DebateGroupSize <= 0 {
		cfg.DebateGroupSize = 5
	}
	if cfg.QuestionGroupSize <= 0 {
		cfg.QuestionGroupSize = 10
	}
	if cfg.BackendTimeout <= 0 {
		cfg.BackendTimeout = 30 * time.Second
	}
	return &ParliamentSearchService{backend: backend, dense: dense, sparse: sparse, cfg: cfg}
}

func (s *ParliamentSearchService) backendCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.BackendTimeout)
}

// SearchDebateTitles finds debates whose contributions match the query
// and filters, grouped by debate. Debates matched by fewer than
// MinimumDebateHits contributions are discarded.
func (s *ParliamentSearchService) SearchDebateTitles(ctx context.Context, req domain.DebateSearchRequest) ([]domain.DebateGroup, error) {
	if req.Query == "" && req.DateFrom == "" && req.DateTo == "" {
		return nil, fmt.Errorf("%w: at least one of query, date_from or date_to must be provided", domain.ErrMissingCriteria)
	}
	dateFrom, dateTo, err := parseDateWindow(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}
	house, err := domain.ParseHouse(req.House)
	if err != nil {
		return nil, err
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultDebateResults
	}

	filter := domain.Compose(
		domain.DateRange(fieldSittingDate, dateFrom, dateTo),
		domain.MatchKeyword(fieldHouse, string(house)),
	)

	query := driven.GroupedQuery{
		Collection:      s.cfg.ContributionsCollection,
		Filter:          filter,
		GroupBy:         fieldDebateExtID,
		GroupLimit:      maxResults,
		GroupSize:       s.cfg.DebateGroupSize,
		PerChannelLimit: maxResults * s.cfg.Overfetch,
	}
	scored := req.Query != ""
	if scored {
		query.Text = req.Query
		query.Dense, query.Sparse, err = s.embedQuery(ctx, req.Query)
		if err != nil {
			return nil, err
		}
	}

	bctx, cancel := s.backendCtx(ctx)
	defer cancel()
	groups, err := s.backend.GroupedFusedVectorQuery(bctx, query)
	if err != nil {
		return nil, fmt.Errorf("debate search: %w", err)
	}

	debates := make([]domain.DebateGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.Hits) < MinimumDebateHits {
			continue
		}
		debates = append(debates, debateFromGroup(g, scored))
	}
	sortDebates(debates)
	debates = truncate(debates, maxResults)

	logger.Debug("debate title search returned %d debates from %d groups", len(debates), len(groups))
	return debates, nil
}

// SearchContributions finds individual contributions. With a query it
// runs a fused hybrid search ranked by relevance; without one it scans
// by filter and orders results chronologically.
func (s *ParliamentSearchService) SearchContributions(ctx context.Context, req domain.ContributionSearchRequest) ([]domain.ContributionHit, error) {
	if req.Query == "" && req.MemberID == 0 && req.DateFrom == "" && req.DateTo == "" && req.DebateID == "" && req.House == "" {
		return nil, fmt.Errorf("%w: at least one of query, member_id, date_from, date_to, debate_id or house must be provided", domain.ErrMissingCriteria)
	}
	dateFrom, dateTo, err := parseDateWindow(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}
	house, err := domain.ParseHouse(req.House)
	if err != nil {
		return nil, err
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultContributionResults
	}

	filter := domain.Compose(
		domain.DateRange(fieldSittingDate, dateFrom, dateTo),
		domain.MatchKeyword(fieldHouse, string(house)),
		domain.MatchInt(fieldMemberID, req.MemberID),
		domain.MatchKeyword(fieldDebateExtID, req.DebateID),
	)

	var hits []driven.Hit
	bctx, cancel := s.backendCtx(ctx)
	defer cancel()
	switch {
	case req.Query != "" && s.dense != nil:
		dense, sparse, err := s.embedQuery(ctx, req.Query)
		if err != nil {
			return nil, err
		}
		hits, err = s.backend.FusedVectorQuery(bctx, driven.FusedQuery{
			Collection:      s.cfg.ContributionsCollection,
			Text:            req.Query,
			Dense:           dense,
			Sparse:          sparse,
			Filter:          filter,
			Limit:           maxResults,
			PerChannelLimit: maxResults * s.cfg.Overfetch,
			MinScore:        s.cfg.MinScore,
		})
		if err != nil {
			return nil, fmt.Errorf("contribution search: %w", err)
		}
	case req.Query != "":
		// No embedder configured. Engines with their own semantic index
		// can still rank the query; the others report unavailability.
		hits, err = s.backend.SemanticMatch(bctx, driven.SemanticQuery{
			Collection: s.cfg.ContributionsCollection,
			Field:      fieldText,
			Query:      req.Query,
			Filter:     filter,
			Limit:      maxResults,
		})
		if err != nil {
			return nil, fmt.Errorf("contribution search: %w", err)
		}
	default:
		hits, err = s.backend.FilteredScan(bctx, driven.ScanQuery{
			Collection: s.cfg.ContributionsCollection,
			Filter:     filter,
			Limit:      maxResults,
		})
		if err != nil {
			return nil, fmt.Errorf("contribution scan: %w", err)
		}
	}

	contributions := make([]domain.ContributionHit, 0, len(hits))
	for _, h := range hits {
		contributions = append(contributions, contributionFromHit(h))
	}
	sortContributions(contributions, req.Query != "")
	contributions = truncate(contributions, maxResults)

	logger.Debug("contribution search returned %d hits", len(contributions))
	return contributions, nil
}

// SearchParliamentaryQuestions finds written questions together with
// their answers. Questions are stored as chunks; hits are grouped per
// source document and reassembled into whole records.
func (s *ParliamentSearchService) SearchParliamentaryQuestions(ctx context.Context, req domain.QuestionSearchRequest) ([]domain.QuestionRecord, error) {
	dateFrom, dateTo, err := parseDateWindow(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultQuestionResults
	}

	filter := domain.Compose(
		domain.DateRange(fieldDateTabled, dateFrom, dateTo),
		domain.MatchKeyword(fieldAskingParty, req.Party),
		domain.MatchInt(fieldAskingMemberID, req.AskingMemberID),
		domain.ContainsText(fieldAnsweringBody, req.AnsweringBodyName),
	)

	query := driven.GroupedQuery{
		Collection:      s.cfg.QuestionsCollection,
		Filter:          filter,
		GroupBy:         fieldDocumentURI,
		GroupLimit:      maxResults,
		GroupSize:       s.cfg.QuestionGroupSize,
		PerChannelLimit: maxResults * s.cfg.Overfetch,
	}
	scored := req.Query != ""
	if scored {
		query.Text = req.Query
		query.Dense, query.Sparse, err = s.embedQuery(ctx, req.Query)
		if err != nil {
			return nil, err
		}
	}

	bctx, cancel := s.backendCtx(ctx)
	defer cancel()
	groups, err := s.backend.GroupedFusedVectorQuery(bctx, query)
	if err != nil {
		return nil, fmt.Errorf("question search: %w", err)
	}

	records := make([]domain.QuestionRecord, 0, len(groups))
	for _, g := range groups {
		chunks := make([]domain.QuestionChunk, 0, len(g.Hits))
		for _, h := range g.Hits {
			if scored && s.cfg.MinScore > 0 && h.Score < s.cfg.MinScore {
				continue
			}
			chunks = append(chunks, chunkFromHit(h))
		}
		if len(chunks) == 0 {
			continue
		}
		records = append(records, reassembleQuestion(chunks))
	}
	sortQuestions(records, scored)
	records = truncate(records, maxResults)

	logger.Debug("question search returned %d records from %d groups", len(records), len(groups))
	return records, nil
}

// FindRelevantContributors ranks members by how strongly their
// contributions match the query. A query is mandatory.
func (s *ParliamentSearchService) FindRelevantContributors(ctx context.Context, req domain.ContributorSearchRequest) ([]domain.ContributorGroup, error) {
	if req.Query == "" {
		return nil, fmt.Errorf("%w: contributor search requires a query", domain.ErrMissingQuery)
	}
	dateFrom, dateTo, err := parseDateWindow(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}
	house, err := domain.ParseHouse(req.House)
	if err != nil {
		return nil, err
	}
	numContributors := req.NumContributors
	if numContributors <= 0 {
		numContributors = defaultNumContributors
	}
	numContributions := req.NumContributions
	if numContributions <= 0 {
		numContributions = defaultNumContributions
	}

	dense, sparse, err := s.embedQuery(ctx, req.Query)
	if err != nil {
		return nil, err
	}
	filter := domain.Compose(
		domain.DateRange(fieldSittingDate, dateFrom, dateTo),
		domain.MatchKeyword(fieldHouse, string(house)),
	)

	bctx, cancel := s.backendCtx(ctx)
	defer cancel()
	groups, err := s.backend.GroupedFusedVectorQuery(bctx, driven.GroupedQuery{
		Collection:      s.cfg.ContributionsCollection,
		Text:            req.Query,
		Dense:           dense,
		Sparse:          sparse,
		Filter:          filter,
		GroupBy:         fieldMemberID,
		GroupLimit:      numContributors,
		GroupSize:       numContributions,
		PerChannelLimit: numContributors * numContributions * s.cfg.Overfetch,
	})
	if err != nil {
		return nil, fmt.Errorf("contributor search: %w", err)
	}

	contributors := make([]domain.ContributorGroup, 0, len(groups))
	for _, g := range groups {
		contributors = append(contributors, contributorFromGroup(g))
	}
	sortContributors(contributors)
	contributors = truncate(contributors, numContributors)

	logger.Debug("contributor search returned %d members", len(contributors))
	return contributors, nil
}

func parseDateWindow(from, to string) (*time.Time, *time.Time, error) {
	dateFrom, err := domain.ParseISODate(from)
	if err != nil {
		return nil, nil, fmt.Errorf("date_from: %w", err)
	}
	dateTo, err := domain.ParseISODate(to)
	if err != nil {
		return nil, nil, fmt.Errorf("date_to: %w", err)
	}
	return dateFrom, dateTo, nil
}

func contributorFromGroup(g driven.HitGroup) domain.ContributorGroup {
	group := domain.ContributorGroup{
		Contributions: make([]domain.ContributionHit, 0, len(g.Hits)),
	}
	group.MemberID, _ = strconv.ParseInt(g.Key, 10, 64)
	for _, h := range g.Hits {
		group.TotalScore += h.Score
		group.Contributions = append(group.Contributions, contributionFromHit(h))
	}
	if len(group.Contributions) > 0 {
		group.MemberName = group.Contributions[0].MemberName
		if group.MemberID == 0 {
			group.MemberID = group.Contributions[0].MemberID
		}
	}
	sortContributions(group.Contributions, true)
	return group
}

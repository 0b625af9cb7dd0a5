package driving

import (
	"context"

	"github.com/openparl/parliament-mcp/internal/core/domain"
)

// ParliamentSearch exposes the four search surfaces over the indexed
// Parliament corpora.
//
// Every operation returns an empty slice (not an error) when the filtered
// or queried result set is genuinely empty, and a validation error before
// any backend call when the request's minimum parameter combination is
// violated.
type ParliamentSearch interface {
	// SearchDebateTitles finds debates whose titles match the query,
	// grouped and ranked per debate section.
	SearchDebateTitles(ctx context.Context, req domain.DebateSearchRequest) ([]domain.DebateGroup, error)

	// SearchContributions finds individual spoken contributions.
	SearchContributions(ctx context.Context, req domain.ContributionSearchRequest) ([]domain.ContributionHit, error)

	// SearchParliamentaryQuestions finds written questions, reassembling
	// chunked question/answer texts into whole records.
	SearchParliamentaryQuestions(ctx context.Context, req domain.QuestionSearchRequest) ([]domain.QuestionRecord, error)

	// FindRelevantContributors ranks members by their contributions on a
	// topic.
	FindRelevantContributors(ctx context.Context, req domain.ContributorSearchRequest) ([]domain.ContributorGroup, error)
}

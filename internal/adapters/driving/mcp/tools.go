package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/openparl/parliament-mcp/internal/core/domain"
)

// DebateSearchInput is the input schema for the search_debate_titles tool.
type DebateSearchInput struct {
	Query      string `json:"query,omitempty" jsonschema:"free text matched against debate contributions"`
	DateFrom   string `json:"date_from,omitempty" jsonschema:"earliest sitting date, inclusive, YYYY-MM-DD"`
	DateTo     string `json:"date_to,omitempty" jsonschema:"latest sitting date, inclusive, YYYY-MM-DD"`
	House      string `json:"house,omitempty" jsonschema:"restrict to Commons or Lords"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of debates to return (default 50)"`
}

// DebateSearchOutput is the output schema for the search_debate_titles tool.
type DebateSearchOutput struct {
	Debates []domain.DebateGroup `json:"debates"`
	Count   int                  `json:"count"`
}

// ContributionSearchInput is the input schema for the search_contributions tool.
type ContributionSearchInput struct {
	Query      string `json:"query,omitempty" jsonschema:"free text matched against the spoken contribution"`
	MemberID   int64  `json:"member_id,omitempty" jsonschema:"restrict to contributions by one member (Parliament id)"`
	DateFrom   string `json:"date_from,omitempty" jsonschema:"earliest sitting date, inclusive, YYYY-MM-DD"`
	DateTo     string `json:"date_to,omitempty" jsonschema:"latest sitting date, inclusive, YYYY-MM-DD"`
	DebateID   string `json:"debate_id,omitempty" jsonschema:"restrict to one debate section external id"`
	House      string `json:"house,omitempty" jsonschema:"restrict to Commons or Lords"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of contributions to return (default 50)"`
}

// ContributionSearchOutput is the output schema for the search_contributions tool.
type ContributionSearchOutput struct {
	Contributions []domain.ContributionHit `json:"contributions"`
	Count         int                      `json:"count"`
}

// QuestionSearchInput is the input schema for the
// search_parliamentary_questions tool.
type QuestionSearchInput struct {
	Query             string `json:"query,omitempty" jsonschema:"free text matched against question and answer text"`
	DateFrom          string `json:"date_from,omitempty" jsonschema:"earliest tabled date, inclusive, YYYY-MM-DD"`
	DateTo            string `json:"date_to,omitempty" jsonschema:"latest tabled date, inclusive, YYYY-MM-DD"`
	Party             string `json:"party,omitempty" jsonschema:"restrict to questions asked by members of this party"`
	AskingMemberID    int64  `json:"asking_member_id,omitempty" jsonschema:"restrict to questions asked by one member (Parliament id)"`
	AnsweringBodyName string `json:"answering_body_name,omitempty" jsonschema:"restrict to answering bodies whose name contains this phrase"`
	MaxResults        int    `json:"max_results,omitempty" jsonschema:"maximum number of questions to return (default 25)"`
}

// QuestionSearchOutput is the output schema for the
// search_parliamentary_questions tool.
type QuestionSearchOutput struct {
	Questions []domain.QuestionRecord `json:"questions"`
	Count     int                     `json:"count"`
}

// ContributorSearchInput is the input schema for the
// find_relevant_contributors tool.
type ContributorSearchInput struct {
	Query            string `json:"query" jsonschema:"the topic to rank contributors against"`
	NumContributors  int    `json:"num_contributors,omitempty" jsonschema:"maximum number of members to return (default 10)"`
	NumContributions int    `json:"num_contributions,omitempty" jsonschema:"retained contributions per member (default 10)"`
	DateFrom         string `json:"date_from,omitempty" jsonschema:"earliest sitting date, inclusive, YYYY-MM-DD"`
	DateTo           string `json:"date_to,omitempty" jsonschema:"latest sitting date, inclusive, YYYY-MM-DD"`
	House            string `json:"house,omitempty" jsonschema:"restrict to Commons or Lords"`
}

// ContributorSearchOutput is the output schema for the
// find_relevant_contributors tool.
type ContributorSearchOutput struct {
	Contributors []domain.ContributorGroup `json:"contributors"`
	Count        int                       `json:"count"`
}

// registerSearchTools registers the Hansard and written-question search
// tools with the MCP server.
func (s *Server) registerSearchTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search_debate_titles",
		Description: "Search debates in the UK Parliament by topic and date. " +
			"Returns matching debates with their titles, dates and section hierarchy. " +
			"At least one of query, date_from or date_to is required.",
	}, s.handleSearchDebates)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search_contributions",
		Description: "Search individual spoken contributions in UK Parliament debates. " +
			"With a query, results are ranked by relevance; without one they are returned " +
			"in chamber order. At least one filter or a query is required.",
	}, s.handleSearchContributions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search_parliamentary_questions",
		Description: "Search UK parliamentary written questions and their answers. " +
			"All parameters are optional; an empty call returns the most recently " +
			"tabled questions.",
	}, s.handleSearchQuestions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "find_relevant_contributors",
		Description: "Find the members of Parliament who speak most on a topic, " +
			"ranked by the relevance of their debate contributions. Requires a query.",
	}, s.handleFindContributors)
}

func (s *Server) handleSearchDebates(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DebateSearchInput,
) (*mcp.CallToolResult, DebateSearchOutput, error) {
	id := logToolCall("search_debate_titles")

	debates, err := s.ports.Search.SearchDebateTitles(ctx, domain.DebateSearchRequest{
		Query:      input.Query,
		DateFrom:   input.DateFrom,
		DateTo:     input.DateTo,
		House:      input.House,
		MaxResults: input.MaxResults,
	})
	logToolDone("search_debate_titles", id, len(debates), err)
	if err != nil {
		return nil, DebateSearchOutput{}, err
	}
	return nil, DebateSearchOutput{Debates: debates, Count: len(debates)}, nil
}

func (s *Server) handleSearchContributions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContributionSearchInput,
) (*mcp.CallToolResult, ContributionSearchOutput, error) {
	id := logToolCall("search_contributions")

	contributions, err := s.ports.Search.SearchContributions(ctx, domain.ContributionSearchRequest{
		Query:      input.Query,
		MemberID:   input.MemberID,
		DateFrom:   input.DateFrom,
		DateTo:     input.DateTo,
		DebateID:   input.DebateID,
		House:      input.House,
		MaxResults: input.MaxResults,
	})
	logToolDone("search_contributions", id, len(contributions), err)
	if err != nil {
		return nil, ContributionSearchOutput{}, err
	}
	return nil, ContributionSearchOutput{Contributions: contributions, Count: len(contributions)}, nil
}

func (s *Server) handleSearchQuestions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QuestionSearchInput,
) (*mcp.CallToolResult, QuestionSearchOutput, error) {
	id := logToolCall("search_parliamentary_questions")

	questions, err := s.ports.Search.SearchParliamentaryQuestions(ctx, domain.QuestionSearchRequest{
		Query:             input.Query,
		DateFrom:          input.DateFrom,
		DateTo:            input.DateTo,
		Party:             input.Party,
		AskingMemberID:    input.AskingMemberID,
		AnsweringBodyName: input.AnsweringBodyName,
		MaxResults:        input.MaxResults,
	})
	logToolDone("search_parliamentary_questions", id, len(questions), err)
	if err != nil {
		return nil, QuestionSearchOutput{}, err
	}
	return nil, QuestionSearchOutput{Questions: questions, Count: len(questions)}, nil
}

func (s *Server) handleFindContributors(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContributorSearchInput,
) (*mcp.CallToolResult, ContributorSearchOutput, error) {
	id := logToolCall("find_relevant_contributors")

	contributors, err := s.ports.Search.FindRelevantContributors(ctx, domain.ContributorSearchRequest{
		Query:            input.Query,
		NumContributors:  input.NumContributors,
		NumContributions: input.NumContributions,
		DateFrom:         input.DateFrom,
		DateTo:           input.DateTo,
		House:            input.House,
	})
	logToolDone("find_relevant_contributors", id, len(contributors), err)
	if err != nil {
		return nil, ContributorSearchOutput{}, err
	}
	return nil, ContributorSearchOutput{Contributors: contributors, Count: len(contributors)}, nil
}

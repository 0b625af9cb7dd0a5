package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openparl/parliament-mcp/internal/core/domain"
	"github.com/openparl/parliament-mcp/internal/core/ports/driving"
)

func newTestServer(t *testing.T, search *mockSearchService, members *mockMemberDirectory) *Server {
	t.Helper()
	ports := &Ports{Search: search}
	if members != nil {
		ports.Members = members
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestServer_handleSearchDebates(t *testing.T) {
	ctx := context.Background()

	t.Run("returns debate groups", func(t *testing.T) {
		mockSearch := &mockSearchService{
			debates: []domain.DebateGroup{
				{
					DebateID:       "3E222FED-6C44-400C-8ABD-112BDCDAE98B",
					Title:          "NATO Summit",
					Date:           time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC),
					House:          "Commons",
					RelevanceScore: 1.8,
					HitCount:       3,
				},
			},
		}
		server := newTestServer(t, mockSearch, nil)

		input := DebateSearchInput{Query: "NATO summit", House: "Commons"}
		_, output, err := server.handleSearchDebates(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Debates, 1)
		assert.Equal(t, "NATO Summit", output.Debates[0].Title)
		assert.Equal(t, "NATO summit", mockSearch.lastDebateReq.Query)
		assert.Equal(t, "Commons", mockSearch.lastDebateReq.House)
	})

	t.Run("passes date window through", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		server := newTestServer(t, mockSearch, nil)

		input := DebateSearchInput{DateFrom: "2025-06-01", DateTo: "2025-06-30", MaxResults: 5}
		_, output, err := server.handleSearchDebates(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Equal(t, "2025-06-01", mockSearch.lastDebateReq.DateFrom)
		assert.Equal(t, "2025-06-30", mockSearch.lastDebateReq.DateTo)
		assert.Equal(t, 5, mockSearch.lastDebateReq.MaxResults)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mockSearch := &mockSearchService{err: errors.New("backend unreachable")}
		server := newTestServer(t, mockSearch, nil)

		_, _, err := server.handleSearchDebates(ctx, nil, DebateSearchInput{Query: "NATO"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend unreachable")
	})
}

func TestServer_handleSearchContributions(t *testing.T) {
	ctx := context.Background()

	t.Run("returns contributions", func(t *testing.T) {
		mockSearch := &mockSearchService{
			contributions: []domain.ContributionHit{
				{
					Text:       "The summit reaffirmed our commitment.",
					MemberID:   172,
					MemberName: "Keir Starmer",
				},
			},
		}
		server := newTestServer(t, mockSearch, nil)

		input := ContributionSearchInput{MemberID: 172, DateFrom: "2025-06-24"}
		_, output, err := server.handleSearchContributions(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Contributions, 1)
		assert.Equal(t, int64(172), output.Contributions[0].MemberID)
		assert.Equal(t, int64(172), mockSearch.lastContribReq.MemberID)
		assert.Equal(t, "2025-06-24", mockSearch.lastContribReq.DateFrom)
	})

	t.Run("validation errors pass through", func(t *testing.T) {
		mockSearch := &mockSearchService{err: domain.ErrMissingCriteria}
		server := newTestServer(t, mockSearch, nil)

		_, _, err := server.handleSearchContributions(ctx, nil, ContributionSearchInput{})

		assert.ErrorIs(t, err, domain.ErrMissingCriteria)
	})
}

func TestServer_handleSearchQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("returns question records", func(t *testing.T) {
		mockSearch := &mockSearchService{
			questions: []domain.QuestionRecord{
				{
					UIN:               "HL1234",
					QuestionText:      "What assessment has been made of rail electrification?",
					AnsweringBodyName: "Department for Transport",
				},
			},
		}
		server := newTestServer(t, mockSearch, nil)

		input := QuestionSearchInput{
			Query:             "rail electrification",
			AnsweringBodyName: "Transport",
			Party:             "Labour",
		}
		_, output, err := server.handleSearchQuestions(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, "HL1234", output.Questions[0].UIN)
		assert.Equal(t, "Transport", mockSearch.lastQuestionReq.AnsweringBodyName)
		assert.Equal(t, "Labour", mockSearch.lastQuestionReq.Party)
	})

	t.Run("empty input is a browse", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		server := newTestServer(t, mockSearch, nil)

		_, output, err := server.handleSearchQuestions(ctx, nil, QuestionSearchInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Empty(t, mockSearch.lastQuestionReq.Query)
	})
}

func TestServer_handleFindContributors(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ranked contributors", func(t *testing.T) {
		mockSearch := &mockSearchService{
			contributors: []domain.ContributorGroup{
				{MemberID: 4212, MemberName: "John Healey", TotalScore: 2.4},
				{MemberID: 172, MemberName: "Keir Starmer", TotalScore: 1.1},
			},
		}
		server := newTestServer(t, mockSearch, nil)

		input := ContributorSearchInput{Query: "defence spending", NumContributors: 2}
		_, output, err := server.handleFindContributors(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, int64(4212), output.Contributors[0].MemberID)
		assert.Equal(t, "defence spending", mockSearch.lastContributorReq.Query)
		assert.Equal(t, 2, mockSearch.lastContributorReq.NumContributors)
	})

	t.Run("missing query error passes through", func(t *testing.T) {
		mockSearch := &mockSearchService{err: domain.ErrMissingQuery}
		server := newTestServer(t, mockSearch, nil)

		_, _, err := server.handleFindContributors(ctx, nil, ContributorSearchInput{})

		assert.ErrorIs(t, err, domain.ErrMissingQuery)
	})
}

func TestServer_handleSearchMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns decoded envelope", func(t *testing.T) {
		members := &mockMemberDirectory{
			raw: json.RawMessage(`{"items":[{"value":{"id":172,"nameDisplayAs":"Keir Starmer"}}],"totalResults":1}`),
		}
		server := newTestServer(t, &mockSearchService{}, members)

		input := MemberSearchInput{Name: "Starmer", House: "Commons", IsCurrentMember: true}
		_, output, err := server.handleSearchMembers(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, float64(1), output.Result["totalResults"])
		assert.Equal(t, "Starmer", members.lastSearchParams.Name)
		assert.Equal(t, "Commons", members.lastSearchParams.House)
		assert.True(t, members.lastSearchParams.IsCurrentMember)
	})

	t.Run("returns error on API failure", func(t *testing.T) {
		members := &mockMemberDirectory{err: errors.New("rate limited")}
		server := newTestServer(t, &mockSearchService{}, members)

		_, _, err := server.handleSearchMembers(ctx, nil, MemberSearchInput{Name: "Starmer"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
	})
}

func TestServer_handleMemberDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes requested sections", func(t *testing.T) {
		members := &mockMemberDirectory{
			details: &driving.MemberDetails{
				Member:   json.RawMessage(`{"value":{"id":172}}`),
				Synopsis: json.RawMessage(`{"value":"Prime Minister since 2024."}`),
			},
		}
		server := newTestServer(t, &mockSearchService{}, members)

		input := MemberDetailInput{MemberID: 172, IncludeSynopsis: true}
		_, output, err := server.handleMemberDetail(ctx, nil, input)

		require.NoError(t, err)
		assert.NotNil(t, output.Member)
		assert.Equal(t, "Prime Minister since 2024.", output.Synopsis["value"])
		assert.Nil(t, output.Biography)
		assert.Equal(t, int64(172), members.lastMemberID)
		assert.True(t, members.lastOpts.IncludeSynopsis)
		assert.False(t, members.lastOpts.IncludeBiography)
	})

	t.Run("omits unrequested sections", func(t *testing.T) {
		members := &mockMemberDirectory{
			details: &driving.MemberDetails{
				Member: json.RawMessage(`{"value":{"id":172}}`),
			},
		}
		server := newTestServer(t, &mockSearchService{}, members)

		_, output, err := server.handleMemberDetail(ctx, nil, MemberDetailInput{MemberID: 172})

		require.NoError(t, err)
		assert.Nil(t, output.Synopsis)
		assert.Nil(t, output.Voting)
	})
}

func TestServer_handleStateOfTheParties(t *testing.T) {
	ctx := context.Background()

	members := &mockMemberDirectory{
		raw: json.RawMessage(`{"items":[{"value":{"party":{"name":"Labour"},"total":403}}]}`),
	}
	server := newTestServer(t, &mockSearchService{}, members)

	input := StateOfThePartiesInput{House: "Commons", ForDate: "2025-06-24"}
	_, output, err := server.handleStateOfTheParties(ctx, nil, input)

	require.NoError(t, err)
	assert.NotNil(t, output.Result["items"])
	assert.Equal(t, "Commons", members.lastHouse)
	assert.Equal(t, "2025-06-24", members.lastForDate)
}

func TestServer_handleDepartments(t *testing.T) {
	ctx := context.Background()

	t.Run("wraps bare array responses", func(t *testing.T) {
		members := &mockMemberDirectory{
			raw: json.RawMessage(`[{"id":29,"name":"Department for Transport"}]`),
		}
		server := newTestServer(t, &mockSearchService{}, members)

		_, output, err := server.handleDepartments(ctx, nil, struct{}{})

		require.NoError(t, err)
		items, ok := output.Result["items"].([]any)
		require.True(t, ok)
		assert.Len(t, items, 1)
	})
}

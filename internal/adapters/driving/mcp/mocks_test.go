package mcp

import (
	"context"
	"encoding/json"

	"github.com/openparl/parliament-mcp/internal/core/domain"
	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
	"github.com/openparl/parliament-mcp/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.ParliamentSearch.
type mockSearchService struct {
	debates       []domain.DebateGroup
	contributions []domain.ContributionHit
	questions     []domain.QuestionRecord
	contributors  []domain.ContributorGroup
	err           error

	lastDebateReq      domain.DebateSearchRequest
	lastContribReq     domain.ContributionSearchRequest
	lastQuestionReq    domain.QuestionSearchRequest
	lastContributorReq domain.ContributorSearchRequest
}

func (m *mockSearchService) SearchDebateTitles(
	_ context.Context,
	req domain.DebateSearchRequest,
) ([]domain.DebateGroup, error) {
	m.lastDebateReq = req
	return m.debates, m.err
}

func (m *mockSearchService) SearchContributions(
	_ context.Context,
	req domain.ContributionSearchRequest,
) ([]domain.ContributionHit, error) {
	m.lastContribReq = req
	return m.contributions, m.err
}

func (m *mockSearchService) SearchParliamentaryQuestions(
	_ context.Context,
	req domain.QuestionSearchRequest,
) ([]domain.QuestionRecord, error) {
	m.lastQuestionReq = req
	return m.questions, m.err
}

func (m *mockSearchService) FindRelevantContributors(
	_ context.Context,
	req domain.ContributorSearchRequest,
) ([]domain.ContributorGroup, error) {
	m.lastContributorReq = req
	return m.contributors, m.err
}

// mockMemberDirectory is a mock implementation of driving.MemberDirectory.
type mockMemberDirectory struct {
	raw     json.RawMessage
	details *driving.MemberDetails
	err     error

	lastSearchParams driven.MemberSearchParams
	lastMemberID     int64
	lastOpts         driving.MemberDetailOptions
	lastHouse        string
	lastForDate      string
}

func (m *mockMemberDirectory) SearchMembers(
	_ context.Context,
	params driven.MemberSearchParams,
) (json.RawMessage, error) {
	m.lastSearchParams = params
	return m.raw, m.err
}

func (m *mockMemberDirectory) DetailedMemberInformation(
	_ context.Context,
	memberID int64,
	opts driving.MemberDetailOptions,
) (*driving.MemberDetails, error) {
	m.lastMemberID = memberID
	m.lastOpts = opts
	return m.details, m.err
}

func (m *mockMemberDirectory) SearchConstituency(
	_ context.Context,
	_ string,
	_ int64,
	_, _ int,
) (json.RawMessage, error) {
	return m.raw, m.err
}

func (m *mockMemberDirectory) ElectionResults(
	_ context.Context,
	_, _, _ int64,
) (json.RawMessage, error) {
	return m.raw, m.err
}

func (m *mockMemberDirectory) StateOfTheParties(
	_ context.Context,
	house string,
	forDate string,
) (json.RawMessage, error) {
	m.lastHouse = house
	m.lastForDate = forDate
	return m.raw, m.err
}

func (m *mockMemberDirectory) GovernmentPosts(_ context.Context) (json.RawMessage, error) {
	return m.raw, m.err
}

func (m *mockMemberDirectory) OppositionPosts(_ context.Context) (json.RawMessage, error) {
	return m.raw, m.err
}

func (m *mockMemberDirectory) Departments(_ context.Context) (json.RawMessage, error) {
	return m.raw, m.err
}

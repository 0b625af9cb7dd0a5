package cli

import (
	"context"
	"encoding/json"
	"time"

	"github.com/openparl/parliament-mcp/internal/adapters/driven/config/file"
	"github.com/openparl/parliament-mcp/internal/core/domain"
	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
	"github.com/openparl/parliament-mcp/internal/core/ports/driving"
)

// setupTestServices swaps the package-level services for mocks and
// returns a cleanup function restoring the originals.
func setupTestServices() func() {
	origSettings := settings
	origSearch := searchService
	origMembers := memberService

	settings = file.Default()
	searchService = &stubSearchService{
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
		contributions: []domain.ContributionHit{
			{
				Text:        "The summit reaffirmed our commitment to collective defence.",
				Date:        time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC),
				MemberName:  "Keir Starmer",
				DebateTitle: "NATO Summit",
			},
		},
		questions: []domain.QuestionRecord{
			{
				UIN:               "HL1234",
				QuestionText:      "What assessment has been made of rail electrification?",
				AskingMember:      domain.Member{Name: "Lord Berkeley", Party: "Labour"},
				AnsweringBodyName: "Department for Transport",
				DateTabled:        time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			},
		},
		contributors: []domain.ContributorGroup{
			{
				MemberID:   4212,
				MemberName: "John Healey",
				TotalScore: 2.4,
				Contributions: []domain.ContributionHit{
					{Text: "Defence spending will rise."},
				},
			},
		},
	}
	memberService = &stubMemberDirectory{}

	return func() {
		settings = origSettings
		searchService = origSearch
		memberService = origMembers
	}
}

type stubSearchService struct {
	debates       []domain.DebateGroup
	contributions []domain.ContributionHit
	questions     []domain.QuestionRecord
	contributors  []domain.ContributorGroup
	err           error

	lastContribReq domain.ContributionSearchRequest
}

func (s *stubSearchService) SearchDebateTitles(
	_ context.Context,
	_ domain.DebateSearchRequest,
) ([]domain.DebateGroup, error) {
	return s.debates, s.err
}

func (s *stubSearchService) SearchContributions(
	_ context.Context,
	req domain.ContributionSearchRequest,
) ([]domain.ContributionHit, error) {
	s.lastContribReq = req
	return s.contributions, s.err
}

func (s *stubSearchService) SearchParliamentaryQuestions(
	_ context.Context,
	_ domain.QuestionSearchRequest,
) ([]domain.QuestionRecord, error) {
	return s.questions, s.err
}

func (s *stubSearchService) FindRelevantContributors(
	_ context.Context,
	_ domain.ContributorSearchRequest,
) ([]domain.ContributorGroup, error) {
	return s.contributors, s.err
}

type stubMemberDirectory struct {
	raw json.RawMessage
	err error
}

func (s *stubMemberDirectory) SearchMembers(
	_ context.Context,
	_ driven.MemberSearchParams,
) (json.RawMessage, error) {
	return s.raw, s.err
}

func (s *stubMemberDirectory) DetailedMemberInformation(
	_ context.Context,
	_ int64,
	_ driving.MemberDetailOptions,
) (*driving.MemberDetails, error) {
	return &driving.MemberDetails{Member: s.raw}, s.err
}

func (s *stubMemberDirectory) SearchConstituency(
	_ context.Context,
	_ string,
	_ int64,
	_, _ int,
) (json.RawMessage, error) {
	return s.raw, s.err
}

func (s *stubMemberDirectory) ElectionResults(
	_ context.Context,
	_, _, _ int64,
) (json.RawMessage, error) {
	return s.raw, s.err
}

func (s *stubMemberDirectory) StateOfTheParties(
	_ context.Context,
	_ string,
	_ string,
) (json.RawMessage, error) {
	return s.raw, s.err
}

func (s *stubMemberDirectory) GovernmentPosts(_ context.Context) (json.RawMessage, error) {
	return s.raw, s.err
}

func (s *stubMemberDirectory) OppositionPosts(_ context.Context) (json.RawMessage, error) {
	return s.raw, s.err
}

func (s *stubMemberDirectory) Departments(_ context.Context) (json.RawMessage, error) {
	return s.raw, s.err
}

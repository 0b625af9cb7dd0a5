package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/openparl/parliament-mcp/internal/core/domain"
	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
	"github.com/openparl/parliament-mcp/internal/core/ports/driving"
	"github.com/openparl/parliament-mcp/internal/logger"
)

// House numbers as used by the Members API.
const (
	houseNumberCommons = 1
	houseNumberLords   = 2
)

// MemberDirectoryService implements driving.MemberDirectory over the
// Members API client. It adds request validation, house resolution and
// the concurrent assembly of multi-section member detail.
type MemberDirectoryService struct {
	api driven.MembersAPI
}

var _ driving.MemberDirectory = (*MemberDirectoryService)(nil)

func NewMemberDirectoryService(api driven.MembersAPI) *MemberDirectoryService {
	return &MemberDirectoryService{api: api}
}

// SearchMembers passes the search through to the Members API.
func (s *MemberDirectoryService) SearchMembers(ctx context.Context, params driven.MemberSearchParams) (json.RawMessage, error) {
	result, err := s.api.SearchMembers(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("member search: %w", err)
	}
	return result, nil
}

// DetailedMemberInformation fetches the member's core record and then the
// requested detail sections in parallel. The voting record needs the
// member's current house, which is read from the core record.
func (s *MemberDirectoryService) DetailedMemberInformation(ctx context.Context, memberID int64, opts driving.MemberDetailOptions) (*driving.MemberDetails, error) {
	if memberID <= 0 {
		return nil, fmt.Errorf("%w: member_id must be a positive Parliament id", domain.ErrMissingCriteria)
	}

	member, err := s.api.Member(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("member %d: %w", memberID, err)
	}
	details := &driving.MemberDetails{Member: member}

	g, gctx := errgroup.WithContext(ctx)
	if opts.IncludeSynopsis {
		g.Go(func() error {
			var err error
			details.Synopsis, err = s.api.MemberSynopsis(gctx, memberID)
			return err
		})
	}
	if opts.IncludeBiography {
		g.Go(func() error {
			var err error
			details.Biography, err = s.api.MemberBiography(gctx, memberID)
			return err
		})
	}
	if opts.IncludeContact {
		g.Go(func() error {
			var err error
			details.Contact, err = s.api.MemberContact(gctx, memberID)
			return err
		})
	}
	if opts.IncludeRegisteredInterests {
		g.Go(func() error {
			var err error
			details.RegisteredInterests, err = s.api.MemberRegisteredInterests(gctx, memberID)
			return err
		})
	}
	if opts.IncludeVotingRecord {
		house := memberHouseNumber(member)
		g.Go(func() error {
			var err error
			details.Voting, err = s.api.MemberVoting(gctx, memberID, house)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("member %d detail: %w", memberID, err)
	}

	logger.Debug("assembled member detail for %d", memberID)
	return details, nil
}

// SearchConstituency fetches one constituency by id when given, otherwise
// searches by name.
func (s *MemberDirectoryService) SearchConstituency(ctx context.Context, searchText string, constituencyID int64, skip, take int) (json.RawMessage, error) {
	if constituencyID > 0 {
		result, err := s.api.Constituency(ctx, constituencyID)
		if err != nil {
			return nil, fmt.Errorf("constituency %d: %w", constituencyID, err)
		}
		return result, nil
	}
	if searchText == "" {
		return nil, fmt.Errorf("%w: either search_text or constituency_id must be provided", domain.ErrMissingCriteria)
	}
	result, err := s.api.ConstituencySearch(ctx, searchText, skip, take)
	if err != nil {
		return nil, fmt.Errorf("constituency search: %w", err)
	}
	return result, nil
}

// ElectionResults resolves a result by member when a member id is given,
// otherwise by constituency (and optionally a specific election).
func (s *MemberDirectoryService) ElectionResults(ctx context.Context, constituencyID, electionID, memberID int64) (json.RawMessage, error) {
	switch {
	case memberID > 0:
		result, err := s.api.LatestElectionResult(ctx, memberID)
		if err != nil {
			return nil, fmt.Errorf("election result for member %d: %w", memberID, err)
		}
		return result, nil
	case constituencyID > 0:
		result, err := s.api.ConstituencyElectionResult(ctx, constituencyID, electionID)
		if err != nil {
			return nil, fmt.Errorf("election result for constituency %d: %w", constituencyID, err)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%w: either member_id or constituency_id must be provided", domain.ErrMissingCriteria)
	}
}

// StateOfTheParties returns the party composition of a house on a date,
// defaulting to today.
func (s *MemberDirectoryService) StateOfTheParties(ctx context.Context, house string, forDate string) (json.RawMessage, error) {
	parsed, err := domain.ParseHouse(house)
	if err != nil {
		return nil, err
	}
	if parsed == "" {
		return nil, fmt.Errorf("%w: house must be Commons or Lords", domain.ErrInvalidHouse)
	}
	if forDate == "" {
		forDate = time.Now().Format(domain.ISODate)
	} else if _, err := domain.ParseISODate(forDate); err != nil {
		return nil, fmt.Errorf("for_date: %w", err)
	}
	result, err := s.api.StateOfTheParties(ctx, string(parsed), forDate)
	if err != nil {
		return nil, fmt.Errorf("state of the parties: %w", err)
	}
	return result, nil
}

func (s *MemberDirectoryService) GovernmentPosts(ctx context.Context) (json.RawMessage, error) {
	result, err := s.api.GovernmentPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("government posts: %w", err)
	}
	return result, nil
}

func (s *MemberDirectoryService) OppositionPosts(ctx context.Context) (json.RawMessage, error) {
	result, err := s.api.OppositionPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("opposition posts: %w", err)
	}
	return result, nil
}

func (s *MemberDirectoryService) Departments(ctx context.Context) (json.RawMessage, error) {
	result, err := s.api.Departments(ctx)
	if err != nil {
		return nil, fmt.Errorf("departments: %w", err)
	}
	return result, nil
}

// memberHouseNumber reads the member's current house out of the raw core
// record, defaulting to the Commons when absent.
func memberHouseNumber(member json.RawMessage) int {
	var record struct {
		Value struct {
			LatestHouseMembership struct {
				House int `json:"house"`
			} `json:"latestHouseMembership"`
		} `json:"value"`
	}
	if err := json.Unmarshal(member, &record); err != nil {
		return houseNumberCommons
	}
	if record.Value.LatestHouseMembership.House == houseNumberLords {
		return houseNumberLords
	}
	return houseNumberCommons
}

package driving

import (
	"context"
	"encoding/json"

	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
)

// MemberDetailOptions selects which detail sections to fetch alongside a
// member's core record.
type MemberDetailOptions struct {
	IncludeSynopsis            bool
	IncludeBiography           bool
	IncludeContact             bool
	IncludeRegisteredInterests bool
	IncludeVotingRecord        bool
}

// MemberDetails aggregates the requested detail sections. Sections that
// were not requested are nil.
type MemberDetails struct {
	Member              json.RawMessage `json:"member"`
	Synopsis            json.RawMessage `json:"synopsis,omitempty"`
	Biography           json.RawMessage `json:"biography,omitempty"`
	Contact             json.RawMessage `json:"contact,omitempty"`
	RegisteredInterests json.RawMessage `json:"registered_interests,omitempty"`
	Voting              json.RawMessage `json:"voting,omitempty"`
}

// MemberDirectory exposes member, constituency and party metadata from the
// Parliament Members API.
type MemberDirectory interface {
	// SearchMembers searches members with the given filters.
	SearchMembers(ctx context.Context, params driven.MemberSearchParams) (json.RawMessage, error)

	// DetailedMemberInformation fetches a member's record plus the
	// requested detail sections, concurrently.
	DetailedMemberInformation(ctx context.Context, memberID int64, opts MemberDetailOptions) (*MemberDetails, error)

	// SearchConstituency searches constituencies by text or fetches one by id.
	SearchConstituency(ctx context.Context, searchText string, constituencyID int64, skip, take int) (json.RawMessage, error)

	// ElectionResults resolves election results by member or constituency.
	ElectionResults(ctx context.Context, constituencyID, electionID, memberID int64) (json.RawMessage, error)

	// StateOfTheParties returns party composition for a house on a date.
	StateOfTheParties(ctx context.Context, house string, forDate string) (json.RawMessage, error)

	// GovernmentPosts returns all government posts and holders.
	GovernmentPosts(ctx context.Context) (json.RawMessage, error)

	// OppositionPosts returns all opposition posts and holders.
	OppositionPosts(ctx context.Context) (json.RawMessage, error)

	// Departments returns the reference list of government departments.
	Departments(ctx context.Context) (json.RawMessage, error)
}

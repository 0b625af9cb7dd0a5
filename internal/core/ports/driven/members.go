package driven

import (
	"context"
	"encoding/json"
)

// MemberSearchParams are the supported filters for a member search.
// Zero values mean the filter is not applied.
type MemberSearchParams struct {
	Name            string
	PartyID         int64
	House           string
	ConstituencyID  int64
	Gender          string
	MemberSince     string
	MemberUntil     string
	IsCurrentMember bool
	Skip            int
	Take            int
}

// MembersAPI is the UK Parliament Members REST API
// (members-api.parliament.uk). Responses pass through to the tool layer as
// raw JSON: the API's payloads are already shaped for reading and retyping
// them here would add nothing but drift.
//
// Implementations must rate-limit themselves and honour context
// cancellation on every call.
type MembersAPI interface {
	// SearchMembers searches Commons and Lords members.
	SearchMembers(ctx context.Context, params MemberSearchParams) (json.RawMessage, error)

	// Member returns a member's core record.
	Member(ctx context.Context, memberID int64) (json.RawMessage, error)

	// MemberSynopsis returns the member's synopsis paragraph.
	MemberSynopsis(ctx context.Context, memberID int64) (json.RawMessage, error)

	// MemberBiography returns constituency, election, party and post history.
	MemberBiography(ctx context.Context, memberID int64) (json.RawMessage, error)

	// MemberContact returns published contact details.
	MemberContact(ctx context.Context, memberID int64) (json.RawMessage, error)

	// MemberRegisteredInterests returns the register of interests entries.
	MemberRegisteredInterests(ctx context.Context, memberID int64) (json.RawMessage, error)

	// MemberVoting returns recent votes in the given house (1 = Commons,
	// 2 = Lords).
	MemberVoting(ctx context.Context, memberID int64, house int) (json.RawMessage, error)

	// LatestElectionResult returns a member's most recent election result.
	LatestElectionResult(ctx context.Context, memberID int64) (json.RawMessage, error)

	// ConstituencySearch searches constituencies by name.
	ConstituencySearch(ctx context.Context, searchText string, skip, take int) (json.RawMessage, error)

	// Constituency returns a constituency's details.
	Constituency(ctx context.Context, constituencyID int64) (json.RawMessage, error)

	// ConstituencyElectionResult returns one election result for a
	// constituency; electionID zero means the latest.
	ConstituencyElectionResult(ctx context.Context, constituencyID, electionID int64) (json.RawMessage, error)

	// StateOfTheParties returns party composition for a house on a date.
	StateOfTheParties(ctx context.Context, house string, forDate string) (json.RawMessage, error)

	// GovernmentPosts returns all government posts and holders.
	GovernmentPosts(ctx context.Context) (json.RawMessage, error)

	// OppositionPosts returns all opposition posts and holders.
	OppositionPosts(ctx context.Context) (json.RawMessage, error)

	// Departments returns the reference list of government departments.
	Departments(ctx context.Context) (json.RawMessage, error)
}

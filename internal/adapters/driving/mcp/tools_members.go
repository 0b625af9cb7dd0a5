package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
	"github.com/openparl/parliament-mcp/internal/core/ports/driving"
)

// MemberSearchInput is the input schema for the search_members tool.
type MemberSearchInput struct {
	Name            string `json:"name,omitempty" jsonschema:"match against member names"`
	PartyID         int64  `json:"party_id,omitempty" jsonschema:"restrict to one party (Parliament party id)"`
	House           string `json:"house,omitempty" jsonschema:"restrict to Commons or Lords"`
	ConstituencyID  int64  `json:"constituency_id,omitempty" jsonschema:"restrict to the member for one constituency"`
	Gender          string `json:"gender,omitempty" jsonschema:"restrict by recorded gender, M or F"`
	MemberSince     string `json:"membership_started_since,omitempty" jsonschema:"membership started on or after this date, YYYY-MM-DD"`
	MemberUntil     string `json:"membership_ended_since,omitempty" jsonschema:"membership ended on or after this date, YYYY-MM-DD"`
	IsCurrentMember bool   `json:"is_current_member,omitempty" jsonschema:"restrict to sitting members"`
	Skip            int    `json:"skip,omitempty" jsonschema:"pagination offset"`
	Take            int    `json:"take,omitempty" jsonschema:"page size (API maximum 20)"`
}

// MemberDetailInput is the input schema for the
// get_detailed_member_information tool.
type MemberDetailInput struct {
	MemberID                   int64 `json:"member_id" jsonschema:"the member's Parliament id"`
	IncludeSynopsis            bool  `json:"include_synopsis,omitempty" jsonschema:"include the member's synopsis paragraph"`
	IncludeBiography           bool  `json:"include_biography,omitempty" jsonschema:"include constituency, party and post history"`
	IncludeContact             bool  `json:"include_contact,omitempty" jsonschema:"include published contact details"`
	IncludeRegisteredInterests bool  `json:"include_registered_interests,omitempty" jsonschema:"include register of interests entries"`
	IncludeVotingRecord        bool  `json:"include_voting_record,omitempty" jsonschema:"include recent votes in the member's house"`
}

// MemberDetailOutput is the output schema for the
// get_detailed_member_information tool. Sections that were not requested
// are omitted.
type MemberDetailOutput struct {
	Member              map[string]any `json:"member"`
	Synopsis            map[string]any `json:"synopsis,omitempty"`
	Biography           map[string]any `json:"biography,omitempty"`
	Contact             map[string]any `json:"contact,omitempty"`
	RegisteredInterests map[string]any `json:"registered_interests,omitempty"`
	Voting              map[string]any `json:"voting,omitempty"`
}

// ConstituencySearchInput is the input schema for the search_constituency
// tool.
type ConstituencySearchInput struct {
	SearchText     string `json:"search_text,omitempty" jsonschema:"match against constituency names"`
	ConstituencyID int64  `json:"constituency_id,omitempty" jsonschema:"fetch one constituency by id instead of searching"`
	Skip           int    `json:"skip,omitempty" jsonschema:"pagination offset"`
	Take           int    `json:"take,omitempty" jsonschema:"page size"`
}

// ElectionResultsInput is the input schema for the get_election_results
// tool.
type ElectionResultsInput struct {
	MemberID       int64 `json:"member_id,omitempty" jsonschema:"the member whose latest election result to fetch"`
	ConstituencyID int64 `json:"constituency_id,omitempty" jsonschema:"the constituency whose election result to fetch"`
	ElectionID     int64 `json:"election_id,omitempty" jsonschema:"a specific election, with constituency_id; zero means the latest"`
}

// StateOfThePartiesInput is the input schema for the
// get_state_of_the_parties tool.
type StateOfThePartiesInput struct {
	House   string `json:"house" jsonschema:"Commons or Lords"`
	ForDate string `json:"for_date,omitempty" jsonschema:"composition on this date, YYYY-MM-DD (default today)"`
}

// RawObjectOutput wraps a Members API object response.
type RawObjectOutput struct {
	Result map[string]any `json:"result"`
}

// registerMembersTools registers the Members API directory tools. Only
// called when a member directory port is wired.
func (s *Server) registerMembersTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search_members",
		Description: "Search members of the UK Parliament by name, party, house, " +
			"constituency or membership dates. All parameters are optional.",
	}, s.handleSearchMembers)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "get_detailed_member_information",
		Description: "Fetch a member's full record from the Parliament Members API. " +
			"Optional sections (synopsis, biography, contact, registered interests, " +
			"voting record) are fetched only when requested.",
	}, s.handleMemberDetail)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search_constituency",
		Description: "Search UK parliamentary constituencies by name, or fetch one " +
			"by id when constituency_id is set.",
	}, s.handleSearchConstituency)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "get_election_results",
		Description: "Fetch general election results. Provide member_id for a " +
			"member's latest result, or constituency_id (optionally with " +
			"election_id) for a constituency's result.",
	}, s.handleElectionResults)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "get_state_of_the_parties",
		Description: "Fetch the party composition of a house of Parliament on a " +
			"given date. Defaults to today.",
	}, s.handleStateOfTheParties)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_government_posts",
		Description: "List all government posts and their current holders.",
	}, s.handleGovernmentPosts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_opposition_posts",
		Description: "List all opposition posts and their current holders.",
	}, s.handleOppositionPosts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_departments",
		Description: "List the reference set of government departments.",
	}, s.handleDepartments)
}

func (s *Server) handleSearchMembers(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MemberSearchInput,
) (*mcp.CallToolResult, RawObjectOutput, error) {
	id := logToolCall("search_members")

	raw, err := s.ports.Members.SearchMembers(ctx, driven.MemberSearchParams{
		Name:            input.Name,
		PartyID:         input.PartyID,
		House:           input.House,
		ConstituencyID:  input.ConstituencyID,
		Gender:          input.Gender,
		MemberSince:     input.MemberSince,
		MemberUntil:     input.MemberUntil,
		IsCurrentMember: input.IsCurrentMember,
		Skip:            input.Skip,
		Take:            input.Take,
	})
	return rawObjectResult("search_members", id, raw, err)
}

func (s *Server) handleMemberDetail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MemberDetailInput,
) (*mcp.CallToolResult, MemberDetailOutput, error) {
	id := logToolCall("get_detailed_member_information")

	details, err := s.ports.Members.DetailedMemberInformation(ctx, input.MemberID, driving.MemberDetailOptions{
		IncludeSynopsis:            input.IncludeSynopsis,
		IncludeBiography:           input.IncludeBiography,
		IncludeContact:             input.IncludeContact,
		IncludeRegisteredInterests: input.IncludeRegisteredInterests,
		IncludeVotingRecord:        input.IncludeVotingRecord,
	})
	logToolDone("get_detailed_member_information", id, 1, err)
	if err != nil {
		return nil, MemberDetailOutput{}, err
	}

	out := MemberDetailOutput{}
	sections := []struct {
		name string
		raw  json.RawMessage
		dst  *map[string]any
	}{
		{"member", details.Member, &out.Member},
		{"synopsis", details.Synopsis, &out.Synopsis},
		{"biography", details.Biography, &out.Biography},
		{"contact", details.Contact, &out.Contact},
		{"registered_interests", details.RegisteredInterests, &out.RegisteredInterests},
		{"voting", details.Voting, &out.Voting},
	}
	for _, section := range sections {
		if len(section.raw) == 0 {
			continue
		}
		decoded, err := decodeObject(section.raw)
		if err != nil {
			return nil, MemberDetailOutput{}, fmt.Errorf("decoding %s section: %w", section.name, err)
		}
		*section.dst = decoded
	}
	return nil, out, nil
}

func (s *Server) handleSearchConstituency(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConstituencySearchInput,
) (*mcp.CallToolResult, RawObjectOutput, error) {
	id := logToolCall("search_constituency")

	raw, err := s.ports.Members.SearchConstituency(ctx, input.SearchText, input.ConstituencyID, input.Skip, input.Take)
	return rawObjectResult("search_constituency", id, raw, err)
}

func (s *Server) handleElectionResults(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ElectionResultsInput,
) (*mcp.CallToolResult, RawObjectOutput, error) {
	id := logToolCall("get_election_results")

	raw, err := s.ports.Members.ElectionResults(ctx, input.ConstituencyID, input.ElectionID, input.MemberID)
	return rawObjectResult("get_election_results", id, raw, err)
}

func (s *Server) handleStateOfTheParties(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StateOfThePartiesInput,
) (*mcp.CallToolResult, RawObjectOutput, error) {
	id := logToolCall("get_state_of_the_parties")

	raw, err := s.ports.Members.StateOfTheParties(ctx, input.House, input.ForDate)
	return rawObjectResult("get_state_of_the_parties", id, raw, err)
}

func (s *Server) handleGovernmentPosts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, RawObjectOutput, error) {
	id := logToolCall("get_government_posts")

	raw, err := s.ports.Members.GovernmentPosts(ctx)
	return rawObjectResult("get_government_posts", id, raw, err)
}

func (s *Server) handleOppositionPosts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, RawObjectOutput, error) {
	id := logToolCall("get_opposition_posts")

	raw, err := s.ports.Members.OppositionPosts(ctx)
	return rawObjectResult("get_opposition_posts", id, raw, err)
}

func (s *Server) handleDepartments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, RawObjectOutput, error) {
	id := logToolCall("get_departments")

	raw, err := s.ports.Members.Departments(ctx)
	return rawObjectResult("get_departments", id, raw, err)
}

// rawObjectResult decodes a Members API response into the generic object
// output. The API wraps list responses in an object envelope, so a single
// shape covers every endpoint. Bare arrays are wrapped under "items".
func rawObjectResult(tool, id string, raw json.RawMessage, err error) (*mcp.CallToolResult, RawObjectOutput, error) {
	logToolDone(tool, id, 1, err)
	if err != nil {
		return nil, RawObjectOutput{}, err
	}
	decoded, err := decodeObject(raw)
	if err != nil {
		return nil, RawObjectOutput{}, fmt.Errorf("decoding %s response: %w", tool, err)
	}
	return nil, RawObjectOutput{Result: decoded}, nil
}

func decodeObject(raw json.RawMessage) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj, nil
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return map[string]any{"items": items}, nil
}

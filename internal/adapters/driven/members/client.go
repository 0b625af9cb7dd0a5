// Package members provides the client for the UK Parliament Members REST
// API (members-api.parliament.uk). The API is public and keyless; the
// client throttles itself and passes response bodies through as raw JSON.
package members

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/openparl/parliament-mcp/internal/core/domain"
	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
	"github.com/openparl/parliament-mcp/internal/logger"
)

// DefaultBaseURL is the public Members API host.
const DefaultBaseURL = "https://members-api.parliament.uk/api"

const defaultTimeout = 30 * time.Second

// Config holds the client settings.
type Config struct {
	// BaseURL overrides the API host, mainly for tests.
	BaseURL string

	// Timeout bounds each request (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond and Burst tune the proactive throttle. Zero means
	// the package defaults.
	RequestsPerSecond float64
	Burst             int
}

// Client is the Members API client.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rateLimiter
}

var _ driven.MembersAPI = (*Client)(nil)

// New creates the client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: newRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}
}

// SearchMembers searches Commons and Lords members.
func (c *Client) SearchMembers(ctx context.Context, params driven.MemberSearchParams) (json.RawMessage, error) {
	query := url.Values{}
	if params.Name != "" {
		query.Set("Name", params.Name)
	}
	if params.PartyID > 0 {
		query.Set("PartyId", strconv.FormatInt(params.PartyID, 10))
	}
	if house := houseNumber(params.House); house > 0 {
		query.Set("House", strconv.Itoa(house))
	}
	if params.ConstituencyID > 0 {
		query.Set("ConstituencyId", strconv.FormatInt(params.ConstituencyID, 10))
	}
	if params.Gender != "" {
		query.Set("Gender", params.Gender)
	}
	if params.MemberSince != "" {
		query.Set("MembershipStartedSince", params.MemberSince)
	}
	if params.MemberUntil != "" {
		query.Set("MembershipEndedSince", params.MemberUntil)
	}
	if params.IsCurrentMember {
		query.Set("IsCurrentMember", "true")
	}
	if params.Skip > 0 {
		query.Set("skip", strconv.Itoa(params.Skip))
	}
	if params.Take > 0 {
		query.Set("take", strconv.Itoa(params.Take))
	}
	return c.get(ctx, "/Members/Search", query)
}

// Member returns a member's core record.
func (c *Client) Member(ctx context.Context, memberID int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/Members/%d", memberID), nil)
}

// MemberSynopsis returns the member's synopsis paragraph.
func (c *Client) MemberSynopsis(ctx context.Context, memberID int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/Members/%d/Synopsis", memberID), nil)
}

// MemberBiography returns constituency, election, party and post history.
func (c *Client) MemberBiography(ctx context.Context, memberID int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/Members/%d/Biography", memberID), nil)
}

// MemberContact returns published contact details.
func (c *Client) MemberContact(ctx context.Context, memberID int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/Members/%d/Contact", memberID), nil)
}

// MemberRegisteredInterests returns the register of interests entries.
func (c *Client) MemberRegisteredInterests(ctx context.Context, memberID int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/Members/%d/RegisteredInterests", memberID), nil)
}

// MemberVoting returns recent votes in the given house.
func (c *Client) MemberVoting(ctx context.Context, memberID int64, house int) (json.RawMessage, error) {
	query := url.Values{"house": []string{strconv.Itoa(house)}}
	return c.get(ctx, fmt.Sprintf("/Members/%d/Voting", memberID), query)
}

// LatestElectionResult returns a member's most recent election result.
func (c *Client) LatestElectionResult(ctx context.Context, memberID int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/Members/%d/LatestElectionResult", memberID), nil)
}

// ConstituencySearch searches constituencies by name.
func (c *Client) ConstituencySearch(ctx context.Context, searchText string, skip, take int) (json.RawMessage, error) {
	query := url.Values{}
	if searchText != "" {
		query.Set("searchText", searchText)
	}
	if skip > 0 {
		query.Set("skip", strconv.Itoa(skip))
	}
	if take > 0 {
		query.Set("take", strconv.Itoa(take))
	}
	return c.get(ctx, "/Location/Constituency/Search", query)
}

// Constituency returns a constituency's details.
func (c *Client) Constituency(ctx context.Context, constituencyID int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/Location/Constituency/%d", constituencyID), nil)
}

// ConstituencyElectionResult returns one election result for a
// constituency; electionID zero means the latest.
func (c *Client) ConstituencyElectionResult(ctx context.Context, constituencyID, electionID int64) (json.RawMessage, error) {
	path := fmt.Sprintf("/Location/Constituency/%d/ElectionResult", constituencyID)
	if electionID > 0 {
		path = fmt.Sprintf("%s/%d", path, electionID)
	}
	return c.get(ctx, path, nil)
}

// StateOfTheParties returns party composition for a house on a date.
func (c *Client) StateOfTheParties(ctx context.Context, house string, forDate string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/Parties/StateOfTheParties/%d/%s", houseNumber(house), forDate), nil)
}

// GovernmentPosts returns all government posts and holders.
func (c *Client) GovernmentPosts(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/Posts/GovernmentPosts", nil)
}

// OppositionPosts returns all opposition posts and holders.
func (c *Client) OppositionPosts(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/Posts/OppositionPosts", nil)
}

// Departments returns the reference list of government departments.
func (c *Client) Departments(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/Reference/Departments", nil)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	if err := c.limiter.wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("members api GET %s", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("members api: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: members api %s", domain.ErrNotFound, path)
	case resp.StatusCode == http.StatusTooManyRequests:
		seconds, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		c.limiter.recordRetryAfter(seconds)
		return nil, fmt.Errorf("members api rate limited on %s", path)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("members api %s: status %d: %s", path, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return json.RawMessage(body), nil
}

// houseNumber maps the house name onto the API's numeric ids.
func houseNumber(house string) int {
	switch domain.House(house) {
	case domain.HouseCommons:
		return 1
	case domain.HouseLords:
		return 2
	}
	return 0
}

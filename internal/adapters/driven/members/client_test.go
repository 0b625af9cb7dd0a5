package members

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openparl/parliament-mcp/internal/core/domain"
	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := New(Config{BaseURL: server.URL, RequestsPerSecond: 1000, Burst: 1000})
	return client, server
}

func TestClient_SearchMembers_BuildsQuery(t *testing.T) {
	var gotQuery map[string][]string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Members/Search", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"items":[]}`))
	})
	defer server.Close()

	_, err := client.SearchMembers(context.Background(), driven.MemberSearchParams{
		Name:            "Abbott",
		House:           "Commons",
		PartyID:         15,
		IsCurrentMember: true,
		Take:            5,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Abbott"}, gotQuery["Name"])
	assert.Equal(t, []string{"1"}, gotQuery["House"])
	assert.Equal(t, []string{"15"}, gotQuery["PartyId"])
	assert.Equal(t, []string{"true"}, gotQuery["IsCurrentMember"])
	assert.Equal(t, []string{"5"}, gotQuery["take"])
	assert.NotContains(t, gotQuery, "skip")
}

func TestClient_MemberVoting_HouseParam(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Members/172/Voting", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("house"))
		w.Write([]byte(`{}`))
	})
	defer server.Close()

	_, err := client.MemberVoting(context.Background(), 172, 2)

	require.NoError(t, err)
}

func TestClient_ConstituencyElectionResult_Paths(t *testing.T) {
	var paths []string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{}`))
	})
	defer server.Close()

	_, err := client.ConstituencyElectionResult(context.Background(), 4099, 0)
	require.NoError(t, err)
	_, err = client.ConstituencyElectionResult(context.Background(), 4099, 422)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/Location/Constituency/4099/ElectionResult",
		"/Location/Constituency/4099/ElectionResult/422",
	}, paths)
}

func TestClient_StateOfTheParties_Path(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Parties/StateOfTheParties/2/2025-06-24", r.URL.Path)
		w.Write([]byte(`{}`))
	})
	defer server.Close()

	_, err := client.StateOfTheParties(context.Background(), "Lords", "2025-06-24")

	require.NoError(t, err)
}

func TestClient_NotFound(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, err := client.Member(context.Background(), 999999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_RateLimited(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer server.Close()

	_, err := client.Member(context.Background(), 172)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
	// The backoff window is now open; an immediate retry must respect it.
	blocked, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err = client.limiter.wait(blocked)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_ServerError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})
	defer server.Close()

	_, err := client.Departments(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_PassesBodyThrough(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value":{"id":172,"nameDisplayAs":"Ms Diane Abbott"}}`))
	})
	defer server.Close()

	body, err := client.Member(context.Background(), 172)

	require.NoError(t, err)
	assert.JSONEq(t, `{"value":{"id":172,"nameDisplayAs":"Ms Diane Abbott"}}`, string(body))
}

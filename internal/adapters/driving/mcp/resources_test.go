package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHouse(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid parties URI",
			uri:      "parliament://parties/Commons",
			expected: "Commons",
		},
		{
			name:     "lords",
			uri:      "parliament://parties/Lords",
			expected: "Lords",
		},
		{
			name:     "invalid prefix",
			uri:      "file://parties/Commons",
			expected: "",
		},
		{
			name:     "trailing path segment",
			uri:      "parliament://parties/Commons/extra",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractHouse(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestServer_handleHousesResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockSearchService{}, nil)

	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "parliament://houses"},
	}
	result, err := server.handleHousesResource(ctx, req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	var houses []map[string]string
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &houses))
	require.Len(t, houses, 2)
	assert.Equal(t, "Commons", houses[0]["name"])
	assert.Equal(t, "Lords", houses[1]["name"])
}

func TestServer_handleDepartmentsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("passes raw JSON through", func(t *testing.T) {
		members := &mockMemberDirectory{
			raw: json.RawMessage(`[{"id":29,"name":"Department for Transport"}]`),
		}
		server := newTestServer(t, &mockSearchService{}, members)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "parliament://departments"},
		}
		result, err := server.handleDepartmentsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "Department for Transport")
	})

	t.Run("not found without members port", func(t *testing.T) {
		server := newTestServer(t, &mockSearchService{}, nil)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "parliament://departments"},
		}
		_, err := server.handleDepartmentsResource(ctx, req)

		require.Error(t, err)
	})
}

func TestServer_handlePartiesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves house from URI", func(t *testing.T) {
		members := &mockMemberDirectory{
			raw: json.RawMessage(`{"items":[]}`),
		}
		server := newTestServer(t, &mockSearchService{}, members)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "parliament://parties/Lords"},
		}
		result, err := server.handlePartiesResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "Lords", members.lastHouse)
		assert.NotEmpty(t, members.lastForDate)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		members := &mockMemberDirectory{}
		server := newTestServer(t, &mockSearchService{}, members)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "parliament://parties/"},
		}
		_, err := server.handlePartiesResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("propagates API errors", func(t *testing.T) {
		members := &mockMemberDirectory{err: errors.New("upstream down")}
		server := newTestServer(t, &mockSearchService{}, members)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "parliament://parties/Commons"},
		}
		_, err := server.handlePartiesResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream down")
	})
}
